package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog-admin/internal/domain"
)

var productSort = newSortable("modelNo", "price", "discountPrice", "prodNameEn", "prodNameZh", "releaseDate")

type ProductRepo struct{ db *gorm.DB }

// Create 只写外键，不回写分类 / 品牌
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return first[domain.Product](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ProductRepo) FindActiveByModelNo(ctx context.Context, modelNo, excludeID string) (*domain.Product, error) {
	q := r.db.WithContext(ctx).
		Where(activeCond, domain.StatusActive).
		Where("model_no = ?", modelNo)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	return first[domain.Product](q)
}

func (r *ProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Where(activeCond, domain.StatusActive)
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.BrandID != "" {
		q = q.Where("brand_id = ?", f.BrandID)
	}
	q, err := productSort.apply(q, f.Sort)
	if err != nil {
		return nil, err
	}
	var ps []domain.Product
	if err := q.Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *ProductRepo) ListActiveByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Where(activeCond, domain.StatusActive).
		Where("category_id = ?", categoryID).
		Order("created_at").
		Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}
