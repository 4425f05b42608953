package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"catalog-admin/internal/domain"
)

// Store gorm 实现；db 可能是事务句柄
type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) Roles() domain.RoleRepository { return &RoleRepo{db: s.db} }
func (s *Store) Users() domain.UserRepository { return &UserRepo{db: s.db} }
func (s *Store) Products() domain.ProductRepository {
	return &ProductRepo{db: s.db}
}

func (s *Store) Categories() domain.NamedRepository[domain.Category] {
	return &NamedRepo[domain.Category]{db: s.db, sort: categorySort}
}

func (s *Store) Brands() domain.NamedRepository[domain.Brand] {
	return &NamedRepo[domain.Brand]{db: s.db, sort: brandSort}
}

// WithTx 一次操作一个事务：fn 返回 nil 提交，返回错误或 panic 回滚
func (s *Store) WithTx(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// first 查不到返回 (nil, nil)
func first[T any](q *gorm.DB) (*T, error) {
	var m T
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

const activeCond = "status = ?"

// foldEq 大小写不敏感等值
func foldEq(column string) string { return "LOWER(" + column + ") = LOWER(?)" }
