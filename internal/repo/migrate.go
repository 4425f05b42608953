package repo

import (
	"gorm.io/gorm"

	"catalog-admin/internal/domain"
)

// AutoMigrate 建表 / 补列（含 user_roles 关联表）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Category{},
		&domain.Brand{},
		&domain.Product{},
	)
}
