package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog-admin/internal/domain"
)

var (
	categorySort = newSortable().alias("categoryNameEn", "name_en").alias("categoryNameZh", "name_zh")
	brandSort    = newSortable().alias("brandNameEn", "name_en").alias("brandNameZh", "name_zh")
)

// NamedRepo 分类 / 品牌共用一套实现
type NamedRepo[T any] struct {
	db   *gorm.DB
	sort sortable
}

func (r *NamedRepo[T]) Create(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *NamedRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return first[T](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *NamedRepo[T]) FindActiveByName(ctx context.Context, nameEn, excludeID string) (*T, error) {
	q := r.db.WithContext(ctx).
		Where(activeCond, domain.StatusActive).
		Where(foldEq("name_en"), nameEn)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	return first[T](q)
}

func (r *NamedRepo[T]) List(ctx context.Context, s domain.Sort) ([]T, error) {
	q, err := r.sort.apply(r.db.WithContext(ctx).Where(activeCond, domain.StatusActive), s)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *NamedRepo[T]) Save(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}
