package domain

// MenuEntry 一个有效分类下的商品数及按品牌分组的数量
type MenuEntry struct {
	Category Category     `json:"category"`
	Count    int          `json:"count"`
	Brands   []BrandCount `json:"brands"`
}

type BrandCount struct {
	Brand *Brand `json:"brand"`
	Count int    `json:"count"`
}
