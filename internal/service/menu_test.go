package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
)

func brandCounts(e domain.MenuEntry) map[string]int {
	out := make(map[string]int, len(e.Brands))
	for _, bc := range e.Brands {
		out[bc.Brand.ID] = bc.Count
	}
	return out
}

func entriesByCategory(menu []domain.MenuEntry) map[string]domain.MenuEntry {
	out := make(map[string]domain.MenuEntry, len(menu))
	for _, m := range menu {
		out[m.Category.ID] = m
	}
	return out
}

func TestMenuAggregation(t *testing.T) {
	for _, workers := range []int{1, 4} {
		e := newEnv(t)
		ctx := context.Background()
		c1, c2 := e.category(t, "C1"), e.category(t, "C2")
		b1, b2 := e.brandOf(t, "B1"), e.brandOf(t, "B2")
		e.product(t, "P1", c1.ID, b1.ID)
		e.product(t, "P2", c1.ID, b1.ID)
		e.product(t, "P3", c1.ID, b2.ID)
		e.product(t, "P4", c2.ID, b1.ID)
		gone := e.product(t, "P5", c2.ID, b2.ID)
		require.NoError(t, e.prods.Delete(ctx, gone.ID))

		menu, err := NewMenuService(e.store, workers, nil).Compute(ctx)
		require.NoError(t, err)
		require.Len(t, menu, 2)

		byCat := entriesByCategory(menu)
		assert.Equal(t, 3, byCat[c1.ID].Count)
		assert.Equal(t, map[string]int{b1.ID: 2, b2.ID: 1}, brandCounts(byCat[c1.ID]))
		assert.Equal(t, 1, byCat[c2.ID].Count)
		assert.Equal(t, map[string]int{b1.ID: 1}, brandCounts(byCat[c2.ID]))
	}
}

func TestMenuNoCategories(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.category(t, "C1")
	require.NoError(t, e.cats.Delete(ctx, c.ID))

	_, err := NewMenuService(e.store, 2, nil).Compute(ctx)
	requireKind(t, err, apperr.KindNotFound, "No Data Found")
}

func TestMenuCategoriesWithoutProducts(t *testing.T) {
	e := newEnv(t)
	e.category(t, "C1")
	e.category(t, "C2")

	menu, err := NewMenuService(e.store, 1, nil).Compute(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 2)
	for _, m := range menu {
		assert.Zero(t, m.Count)
		assert.NotNil(t, m.Brands)
		assert.Empty(t, m.Brands)
	}
}

func TestMenuStableAcrossCalls(t *testing.T) {
	e := newEnv(t)
	b := e.brandOf(t, "B")
	for _, n := range []string{"C1", "C2", "C3", "C4"} {
		c := e.category(t, n)
		e.product(t, "P-"+n, c.ID, b.ID)
	}
	svc := NewMenuService(e.store, 3, nil)

	first, err := svc.Compute(context.Background())
	require.NoError(t, err)
	second, err := svc.Compute(context.Background())
	require.NoError(t, err)

	ids := func(m []domain.MenuEntry) []string {
		out := make([]string, 0, len(m))
		for _, x := range m {
			out = append(out, x.Category.ID)
		}
		return out
	}
	assert.Equal(t, ids(first), ids(second))
}

// failingProducts 让商品查询失败，验证整体失败
type failingProducts struct {
	domain.Store
}

func (f failingProducts) Products() domain.ProductRepository {
	return brokenProductRepo{f.Store.Products()}
}

type brokenProductRepo struct{ domain.ProductRepository }

func (brokenProductRepo) ListActiveByCategory(context.Context, string) ([]domain.Product, error) {
	return nil, errors.New("connection reset")
}

func TestMenuLookupErrorIsInternal(t *testing.T) {
	e := newEnv(t)
	e.category(t, "C1")

	menu, err := NewMenuService(failingProducts{e.store}, 2, nil).Compute(context.Background())
	requireKind(t, err, apperr.KindInternal, apperr.MsgInternal)
	assert.Nil(t, menu)
}

func TestBuildEntryGroupsByBrandID(t *testing.T) {
	// 同名不同 ID 的品牌是两组
	b1 := &domain.Brand{NameEn: "Same"}
	b1.ID = "b1"
	b2 := &domain.Brand{NameEn: "Same"}
	b2.ID = "b2"
	b1copy := *b1
	ps := []domain.Product{
		{BrandID: "b1", Brand: b1},
		{BrandID: "b2", Brand: b2},
		{BrandID: "b1", Brand: &b1copy},
	}

	e := BuildEntry(domain.Category{}, ps)
	assert.Equal(t, 3, e.Count)
	require.Len(t, e.Brands, 2)
	assert.Equal(t, "b1", e.Brands[0].Brand.ID)
	assert.Equal(t, 2, e.Brands[0].Count)
	assert.Equal(t, "b2", e.Brands[1].Brand.ID)
	assert.Equal(t, 1, e.Brands[1].Count)
}
