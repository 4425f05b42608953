package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const denyPrefix = "auth:deny:"

// Denylist 注销后的 token（按 jti）在过期前一直拒绝；rdb 为 nil 时退化为空实现
type Denylist struct {
	RDB *redis.Client
	JWT *JWTer
}

// Revoke 过期或无法解析的 token 无需处理
func (d *Denylist) Revoke(ctx context.Context, token string) error {
	if d == nil || d.RDB == nil || token == "" {
		return nil
	}
	c, err := d.JWT.Parse(token)
	if err != nil {
		return nil
	}
	ttl := time.Minute
	if c.ExpiresAt != nil {
		ttl = time.Until(c.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return d.RDB.Set(ctx, denyPrefix+c.ID, 1, ttl).Err()
}

// Revoked redis 故障时返回错误，由调用方决定放行还是拒绝
func (d *Denylist) Revoked(ctx context.Context, c *Claims) (bool, error) {
	if d == nil || d.RDB == nil || c == nil || c.ID == "" {
		return false, nil
	}
	err := d.RDB.Get(ctx, denyPrefix+c.ID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
