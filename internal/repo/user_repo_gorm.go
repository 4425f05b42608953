package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog-admin/internal/domain"
)

var userSort = newSortable("userId")

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Create 只写 user_roles 关联，不回写角色本身
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Omit("Roles.*").Create(u).Error
}

func (r *UserRepo) FindActiveByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return first[domain.User](r.db.WithContext(ctx).
		Preload("Roles").
		Where(activeCond, domain.StatusActive).
		Where(foldEq("user_id"), userID))
}

// List 不加载角色
func (r *UserRepo) List(ctx context.Context, s domain.Sort) ([]domain.User, error) {
	q, err := userSort.apply(r.db.WithContext(ctx).Where(activeCond, domain.StatusActive), s)
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Save 角色在创建时确定，之后不同步
func (r *UserRepo) Save(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error
}
