package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 引用一个分类和一个品牌；引用只在写入时校验
type Product struct {
	Base
	ModelNo       string              `gorm:"size:64;not null;index" json:"modelNo"`
	Price         decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"price"`
	DiscountPrice decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"discountPrice"`
	ProdDescEn    string              `gorm:"type:text;not null" json:"prodDescEn"`
	ProdDescZh    string              `gorm:"type:text" json:"prodDescZh"`
	ProdNameEn    string              `gorm:"size:255;not null" json:"prodNameEn"`
	ProdNameZh    string              `gorm:"size:255" json:"prodNameZh"`
	ImageURL      string              `gorm:"size:512" json:"imageUrl"`
	CategoryID    string              `gorm:"size:32;not null;index" json:"categoryId"`
	Category      *Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BrandID       string              `gorm:"size:32;not null;index" json:"brandId"`
	Brand         *Brand              `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	ReleaseDate   time.Time           `gorm:"not null" json:"releaseDate"`
}

func (Product) TableName() string { return "products" }

// ProductFilter 列表筛选（均可选）
type ProductFilter struct {
	CategoryID string
	BrandID    string
	Sort       Sort
}
