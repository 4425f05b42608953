// Package testkit 测试辅助：每个测试一个独立的内存 sqlite 库
package testkit

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"catalog-admin/internal/core/database"
	"catalog-admin/internal/repo"
	"catalog-admin/pkg/utils"
)

// NewDB 已迁移好的内存库，测试结束自动关闭
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + utils.NewID()[:8]
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewStore 基于 NewDB 的仓储
func NewStore(t testing.TB) (*repo.Store, *gorm.DB) {
	t.Helper()
	db := NewDB(t)
	return repo.NewStore(db), db
}
