package kv

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis addr 为空时返回 nil（未配置 redis）
func NewRedis(addr, pass string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// Ping 启动时探活
func Ping(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}
