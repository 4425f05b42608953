package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/storage"
	"catalog-admin/pkg/utils"
)

// ProductInput 创建 / 更新共用；Image 为空表示不上传（更新时保留原图）
type ProductInput struct {
	ModelNo       string
	Price         decimal.Decimal
	DiscountPrice decimal.NullDecimal
	ProdDescEn    string
	ProdDescZh    string
	ProdNameEn    string
	ProdNameZh    string
	CategoryID    string
	BrandID       string
	Image         []byte
}

type ProductService struct {
	store    domain.Store
	uploader Uploader
	now      func() time.Time
}

func NewProductService(st domain.Store, up Uploader) *ProductService {
	return &ProductService{store: st, uploader: up, now: time.Now}
}

func (in *ProductInput) normalize() {
	in.ModelNo = trim(in.ModelNo)
	in.CategoryID = trim(in.CategoryID)
	in.BrandID = trim(in.BrandID)
	in.ProdNameEn = trim(in.ProdNameEn)
}

func (in ProductInput) apply(p *domain.Product) {
	p.ModelNo = in.ModelNo
	p.Price = in.Price
	p.DiscountPrice = in.DiscountPrice
	p.ProdDescEn = in.ProdDescEn
	p.ProdDescZh = in.ProdDescZh
	p.ProdNameEn = in.ProdNameEn
	p.ProdNameZh = in.ProdNameZh
	p.CategoryID = in.CategoryID
	p.BrandID = in.BrandID
}

// refs 依次校验分类与品牌，都必须有效
func (s *ProductService) refs(ctx context.Context, tx domain.Store, in ProductInput) (*domain.Category, *domain.Brand, error) {
	c, err := resolveCategory(ctx, tx, in.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	b, err := resolveBrand(ctx, tx, in.BrandID)
	if err != nil {
		return nil, nil, err
	}
	return c, b, nil
}

// upload 没有图片时返回空串；类型不支持属于入参错误
func (s *ProductService) upload(ctx context.Context, in ProductInput) (string, error) {
	if len(in.Image) == 0 {
		return "", nil
	}
	if s.uploader == nil {
		return "", errors.New("product: uploader not configured")
	}
	url, err := s.uploader.Upload(ctx, storage.Object{Data: in.Image, Hint: in.ModelNo})
	if errors.Is(err, storage.ErrInvalidMimeType) {
		return "", apperr.Validation("Only png and jpeg images are allowed")
	}
	return url, err
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	in.normalize()
	if in.ModelNo == "" {
		return nil, apperr.Validation("Model no is not provided")
	}

	var out *domain.Product
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		dup, err := tx.Products().FindActiveByModelNo(ctx, in.ModelNo, "")
		if err != nil {
			return err
		}
		if dup != nil {
			return apperr.Conflict("Product already exists")
		}
		c, b, err := s.refs(ctx, tx, in)
		if err != nil {
			return err
		}
		url, err := s.upload(ctx, in)
		if err != nil {
			return err
		}

		p := &domain.Product{ImageURL: url, ReleaseDate: s.now()}
		p.Activate(utils.NewID())
		in.apply(p)
		if err := tx.Products().Create(ctx, p); err != nil {
			return err
		}
		p.Category, p.Brand = c, b
		out = p
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	return out, nil
}

// Update 覆盖可变字段；ReleaseDate 不变
func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) error {
	in.normalize()
	if in.ModelNo == "" {
		return apperr.Validation("Model no is not provided")
	}

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		p, err := tx.Products().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil || !p.IsActive() {
			return apperr.NotFound("Product does not exist")
		}
		if _, _, err := s.refs(ctx, tx, in); err != nil {
			return err
		}
		dup, err := tx.Products().FindActiveByModelNo(ctx, in.ModelNo, id)
		if err != nil {
			return err
		}
		if dup != nil {
			return apperr.Conflict("Product already exists")
		}
		url, err := s.upload(ctx, in)
		if err != nil {
			return err
		}
		if url != "" {
			p.ImageURL = url
		}
		in.apply(p)
		return tx.Products().Save(ctx, p)
	})
	return apperr.From(err)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.store.Products().FindByID(ctx, id)
	if err != nil {
		return nil, apperr.From(err)
	}
	if p == nil || !p.IsActive() {
		return nil, apperr.NotFound(notFoundMsg("Product"))
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	ps, err := s.store.Products().List(ctx, f)
	if err != nil {
		return nil, listErr(err)
	}
	if len(ps) == 0 {
		return nil, apperr.NotFound(notFoundMsg("Product"))
	}
	return ps, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		p, err := tx.Products().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil || !p.IsActive() {
			return apperr.NotFound(notFoundMsg("Product"))
		}
		p.MarkDeleted()
		return tx.Products().Save(ctx, p)
	})
	return apperr.From(err)
}
