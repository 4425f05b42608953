package service

import (
	"context"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
)

const msgBadCredential = "Invalid user id and password"

type LoginResult struct {
	Token  string   `json:"token"`
	UserID string   `json:"userId"`
	Roles  []string `json:"roles"`
}

type AuthService struct {
	store   domain.Store
	hasher  PasswordHasher
	issuer  TokenIssuer
	revoker TokenRevoker
}

func NewAuthService(st domain.Store, h PasswordHasher, iss TokenIssuer, rev TokenRevoker) *AuthService {
	return &AuthService{store: st, hasher: h, issuer: iss, revoker: rev}
}

// Login 用户不存在与密码错误返回同一个错误；未设置密码的用户不校验密码。
// userId 不区分大小写，与唯一性规则一致
func (s *AuthService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	u, err := s.store.Users().FindActiveByUserID(ctx, trim(userID))
	if err != nil {
		return nil, apperr.From(err)
	}
	if u == nil {
		return nil, apperr.Unauthorized(msgBadCredential)
	}
	if u.PasswordHash != "" && !s.hasher.Compare(password, u.PasswordHash) {
		return nil, apperr.Unauthorized(msgBadCredential)
	}

	roles := domain.RoleNames(u.Roles)
	token, err := s.issuer.Issue(u.UserID, roles)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &LoginResult{Token: token, UserID: u.UserID, Roles: roles}, nil
}

// Logout 未配置 revoker 时只由客户端丢弃 token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.revoker == nil || token == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, token); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
