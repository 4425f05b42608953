package repo

import (
	"context"

	"gorm.io/gorm"

	"catalog-admin/internal/domain"
)

type RoleRepo struct{ db *gorm.DB }

func (r *RoleRepo) Create(ctx context.Context, role *domain.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *RoleRepo) FindActiveByName(ctx context.Context, name string) (*domain.Role, error) {
	return first[domain.Role](r.db.WithContext(ctx).
		Where(activeCond, domain.StatusActive).
		Where("name = ?", name))
}

// FindActiveByNames 只要求部分命中，由调用方判断是否为空
func (r *RoleRepo) FindActiveByNames(ctx context.Context, names []string) ([]domain.Role, error) {
	var roles []domain.Role
	if len(names) == 0 {
		return roles, nil
	}
	err := r.db.WithContext(ctx).
		Where(activeCond, domain.StatusActive).
		Where("name IN ?", names).
		Order("role_id").
		Find(&roles).Error
	return roles, err
}

func (r *RoleRepo) List(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	err := r.db.WithContext(ctx).
		Where(activeCond, domain.StatusActive).
		Order("role_id").
		Find(&roles).Error
	return roles, err
}
