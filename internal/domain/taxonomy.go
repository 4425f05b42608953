package domain

// Named 分类 / 品牌共用的形态：英文名必填，中文名可选
type Named interface {
	Record
	EnglishName() string
	SetNames(en, zh string)
}

type Category struct {
	Base
	NameEn string `gorm:"size:255;not null;index" json:"categoryNameEn"`
	NameZh string `gorm:"size:255" json:"categoryNameZh"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) EnglishName() string { return c.NameEn }
func (c *Category) SetNames(en, zh string) {
	c.NameEn, c.NameZh = en, zh
}

type Brand struct {
	Base
	NameEn string `gorm:"size:255;not null;index" json:"brandNameEn"`
	NameZh string `gorm:"size:255" json:"brandNameZh"`
}

func (Brand) TableName() string { return "brands" }

func (b *Brand) EnglishName() string { return b.NameEn }
func (b *Brand) SetNames(en, zh string) {
	b.NameEn, b.NameZh = en, zh
}
