package domain

import (
	"context"
	"errors"
)

// ErrUnknownSortKey 列表排序字段不在白名单
var ErrUnknownSortKey = errors.New("unknown sort key")

// 约定：FindXxx 查不到返回 (nil, nil)；List 只返回有效记录

type RoleRepository interface {
	Create(ctx context.Context, r *Role) error
	FindActiveByName(ctx context.Context, name string) (*Role, error)
	FindActiveByNames(ctx context.Context, names []string) ([]Role, error)
	List(ctx context.Context) ([]Role, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// FindActiveByUserID 大小写不敏感，预加载角色
	FindActiveByUserID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context, s Sort) ([]User, error)
	Save(ctx context.Context, u *User) error
}

// NamedRepository 分类 / 品牌共用
type NamedRepository[T any] interface {
	Create(ctx context.Context, m *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	// FindActiveByName 英文名大小写不敏感，excludeID 非空时排除该记录
	FindActiveByName(ctx context.Context, nameEn, excludeID string) (*T, error)
	List(ctx context.Context, s Sort) ([]T, error)
	Save(ctx context.Context, m *T) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindActiveByModelNo(ctx context.Context, modelNo, excludeID string) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, error)
	// ListActiveByCategory 预加载品牌，供菜单聚合使用
	ListActiveByCategory(ctx context.Context, categoryID string) ([]Product, error)
	Save(ctx context.Context, p *Product) error
}

// Store 所有仓储的入口；WithTx 内的写操作要么全部生效要么全部回滚
type Store interface {
	Roles() RoleRepository
	Users() UserRepository
	Categories() NamedRepository[Category]
	Brands() NamedRepository[Brand]
	Products() ProductRepository
	WithTx(ctx context.Context, fn func(tx Store) error) error
}
