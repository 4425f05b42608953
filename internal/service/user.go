package service

import (
	"context"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
	"catalog-admin/pkg/utils"
)

// DefaultRole 创建用户未指定角色时使用
const DefaultRole = "staff"

type UserInput struct {
	UserID    string
	Password  string
	RoleNames []string
}

type UserService struct {
	store  domain.Store
	hasher PasswordHasher
}

func NewUserService(st domain.Store, h PasswordHasher) *UserService {
	return &UserService{store: st, hasher: h}
}

// Create 角色按名字解析，部分命中即可
func (s *UserService) Create(ctx context.Context, in UserInput) (*domain.User, error) {
	in.UserID = trim(in.UserID)
	if in.UserID == "" {
		return nil, apperr.Validation("User id is not provided")
	}
	if len(in.RoleNames) == 0 {
		in.RoleNames = []string{DefaultRole}
	}

	var out *domain.User
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		dup, err := tx.Users().FindActiveByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if dup != nil {
			return apperr.Conflict("User already exists")
		}
		roles, err := resolveRoles(ctx, tx, in.RoleNames)
		if err != nil {
			return err
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return err
		}

		u := &domain.User{UserID: in.UserID, PasswordHash: hash, Roles: roles}
		u.Activate(utils.NewID())
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	return out, nil
}

// Update 只改密码，不校验旧密码
func (s *UserService) Update(ctx context.Context, userID, password string) error {
	if password == "" {
		return apperr.Validation("Password is not provided")
	}
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		u, err := tx.Users().FindActiveByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return apperr.NotFound("User does not exist")
		}
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
		return tx.Users().Save(ctx, u)
	})
	return apperr.From(err)
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.store.Users().FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.From(err)
	}
	if u == nil {
		return nil, apperr.NotFound(notFoundMsg("user"))
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, sort domain.Sort) ([]domain.User, error) {
	users, err := s.store.Users().List(ctx, sort)
	if err != nil {
		return nil, listErr(err)
	}
	if len(users) == 0 {
		return nil, apperr.NotFound(notFoundMsg("user"))
	}
	return users, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		u, err := tx.Users().FindActiveByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return apperr.NotFound(notFoundMsg("user"))
		}
		u.MarkDeleted()
		return tx.Users().Save(ctx, u)
	})
	return apperr.From(err)
}
