package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
)

const msgNoData = "No Data Found"

// MenuService 分类 -> 品牌 -> 商品数 聚合
type MenuService struct {
	store   domain.Store
	workers int
	log     *zap.Logger
}

// NewMenuService workers <= 1 时逐个分类顺序查询
func NewMenuService(st domain.Store, workers int, log *zap.Logger) *MenuService {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MenuService{store: st, workers: workers, log: log}
}

// Compute 任何一次查询失败都整体失败，不返回部分结果
func (s *MenuService) Compute(ctx context.Context) (menu []domain.MenuEntry, err error) {
	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = apperr.KindOf(err).String()
		}
		menuBuilds.WithLabelValues(result).Inc()
		menuLatency.Observe(time.Since(start).Seconds())
	}()

	categories, err := s.store.Categories().List(ctx, domain.Sort{})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	s.log.Debug("menu categories loaded", zap.Int("count", len(categories)), zap.Duration("took", time.Since(start)))
	if len(categories) == 0 {
		return nil, apperr.NotFound(msgNoData)
	}

	menu = make([]domain.MenuEntry, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range categories {
		i := i
		g.Go(func() error {
			ps, err := s.store.Products().ListActiveByCategory(gctx, categories[i].ID)
			if err != nil {
				return err
			}
			menu[i] = BuildEntry(categories[i], ps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal(err)
	}
	s.log.Debug("menu built", zap.Int("categories", len(menu)), zap.Duration("took", time.Since(start)))

	if len(menu) == 0 {
		return nil, apperr.NotFound(msgNoData)
	}
	return menu, nil
}

// BuildEntry 按品牌 ID 分组，品牌顺序为首次出现的顺序
func BuildEntry(c domain.Category, ps []domain.Product) domain.MenuEntry {
	e := domain.MenuEntry{Category: c, Count: len(ps), Brands: make([]domain.BrandCount, 0)}
	idx := make(map[string]int)
	for i := range ps {
		key := ps[i].BrandID
		if j, ok := idx[key]; ok {
			e.Brands[j].Count++
			continue
		}
		idx[key] = len(e.Brands)
		e.Brands = append(e.Brands, domain.BrandCount{Brand: ps[i].Brand, Count: 1})
	}
	return e
}
