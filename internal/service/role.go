package service

import (
	"context"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
	"catalog-admin/pkg/utils"
)

// RoleSeed 初始化角色用
type RoleSeed struct {
	RoleID    int
	Name      string
	Endpoints []string
}

// DefaultRoles 管理命令 seed-roles 的默认数据
var DefaultRoles = []RoleSeed{
	{RoleID: 1, Name: "admin", Endpoints: []string{"*"}},
	{RoleID: 2, Name: DefaultRole, Endpoints: []string{"menu", "categories", "brands", "products"}},
}

type RoleService struct{ store domain.Store }

func NewRoleService(st domain.Store) *RoleService { return &RoleService{store: st} }

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.store.Roles().List(ctx)
	if err != nil {
		return nil, apperr.From(err)
	}
	if len(roles) == 0 {
		return nil, apperr.NotFound(notFoundMsg("role"))
	}
	return roles, nil
}

// Seed 已存在的有效同名角色跳过；返回新建数量
func (s *RoleService) Seed(ctx context.Context, seeds []RoleSeed) (int, error) {
	created := 0
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		for _, rs := range seeds {
			name := trim(rs.Name)
			if name == "" {
				continue
			}
			old, err := tx.Roles().FindActiveByName(ctx, name)
			if err != nil {
				return err
			}
			if old != nil {
				continue
			}
			r := &domain.Role{RoleID: rs.RoleID, Name: name, Endpoints: rs.Endpoints}
			r.Activate(utils.NewID())
			if err := tx.Roles().Create(ctx, r); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, apperr.From(err)
	}
	return created, nil
}
