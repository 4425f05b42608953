package service

import (
	"context"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
)

// recordPtr 让泛型代码能调用指针接收者上的 Record 方法
type recordPtr[T any] interface {
	*T
	domain.Record
}

// resolveActive 引用必须存在且有效，否则 Conflict
func resolveActive[T any, P recordPtr[T]](ctx context.Context, r domain.NamedRepository[T], id, label string) (*T, error) {
	m, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || !P(m).IsActive() {
		return nil, apperr.Conflict(label + " does not exist")
	}
	return m, nil
}

func resolveCategory(ctx context.Context, tx domain.Store, id string) (*domain.Category, error) {
	return resolveActive(ctx, tx.Categories(), id, "Category")
}

func resolveBrand(ctx context.Context, tx domain.Store, id string) (*domain.Brand, error) {
	return resolveActive(ctx, tx.Brands(), id, "Brand")
}

// resolveRoles 按名字查有效角色；部分命中即可，全部落空才失败
func resolveRoles(ctx context.Context, tx domain.Store, names []string) ([]domain.Role, error) {
	seen := make(map[string]struct{}, len(names))
	uniq := make([]string, 0, len(names))
	for _, n := range names {
		n = trim(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}
	roles, err := tx.Roles().FindActiveByNames(ctx, uniq)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, apperr.Conflict("Role does not exist")
	}
	return roles, nil
}
