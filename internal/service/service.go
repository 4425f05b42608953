// Package service 实体服务：每个写操作一个事务，对外只返回 *apperr.Error
package service

import (
	"context"
	"errors"
	"strings"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/storage"
)

// PasswordHasher 密码能力（生产用 bcrypt）
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Compare(pw, hashed string) bool
}

type TokenIssuer interface {
	Issue(uid string, roles []string) (string, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, token string) error
}

// Uploader 对象存储能力，返回公开访问 URL
type Uploader interface {
	Upload(ctx context.Context, obj storage.Object) (string, error)
}

const msgInvalidSort = "Invalid sort key"

func notFoundMsg(label string) string { return "No " + label + " found" }

// listErr 排序字段非法属于入参错误
func listErr(err error) error {
	if errors.Is(err, domain.ErrUnknownSortKey) {
		return apperr.Validation(msgInvalidSort)
	}
	return apperr.From(err)
}

func trim(s string) string { return strings.TrimSpace(s) }
