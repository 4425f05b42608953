package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/service"
	"catalog-admin/internal/transport/http/ez"
)

const imageField = "image"

// ProductForm multipart 表单；价格按字符串收，校验通过后再转 decimal
type ProductForm struct {
	ModelNo       string `form:"modelNo" json:"modelNo" binding:"required,max=64"`
	Price         string `form:"price" json:"price" binding:"required,decimal"`
	DiscountPrice string `form:"discountPrice" json:"discountPrice" binding:"omitempty,decimal"`
	ProdDescEn    string `form:"prodDescEn" json:"prodDescEn" binding:"required"`
	ProdDescZh    string `form:"prodDescZh" json:"prodDescZh"`
	ProdNameEn    string `form:"prodNameEn" json:"prodNameEn" binding:"required,max=255"`
	ProdNameZh    string `form:"prodNameZh" json:"prodNameZh" binding:"max=255"`
	CategoryID    string `form:"categoryId" json:"categoryId" binding:"required"`
	BrandID       string `form:"brandId" json:"brandId" binding:"required"`
}

type productQuery struct {
	listQuery
	CategoryID string `form:"categoryId"`
	BrandID    string `form:"brandId"`
}

// input 调用前 decimal 规则已保证格式合法
func (f ProductForm) input(image []byte) service.ProductInput {
	in := service.ProductInput{
		ModelNo:    f.ModelNo,
		Price:      decimal.RequireFromString(strings.TrimSpace(f.Price)),
		ProdDescEn: f.ProdDescEn,
		ProdDescZh: f.ProdDescZh,
		ProdNameEn: f.ProdNameEn,
		ProdNameZh: f.ProdNameZh,
		CategoryID: f.CategoryID,
		BrandID:    f.BrandID,
		Image:      image,
	}
	if s := strings.TrimSpace(f.DiscountPrice); s != "" {
		in.DiscountPrice = decimal.NewNullDecimal(decimal.RequireFromString(s))
	}
	return in
}

// readImage 没传文件返回 nil
func (h *Handlers) readImage(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Validation("Invalid image")
	}
	if h.MaxImageBytes > 0 && fh.Size > h.MaxImageBytes {
		return nil, apperr.Validation("Image is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (h *Handlers) mountProducts(g ez.EZ) {
	ez.RegisterAction(g, ez.Action[ProductForm, *domain.Product]{
		Method: http.MethodPost,
		Path:   "/products",
		Binder: ez.BindForm,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *ProductForm) (*domain.Product, error) {
			img, err := h.readImage(c)
			if err != nil {
				return nil, err
			}
			return h.Products.Create(c.Request.Context(), in.input(img))
		},
	})

	ez.RegisterAction(g, ez.Action[productQuery, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/products",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, q *productQuery) ([]domain.Product, error) {
			return h.Products.List(c.Request.Context(), domain.ProductFilter{
				CategoryID: strings.TrimSpace(q.CategoryID),
				BrandID:    strings.TrimSpace(q.BrandID),
				Sort:       q.sort(),
			})
		},
	})

	ez.RegisterAction(g, ez.Action[empty, *domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (*domain.Product, error) {
			return h.Products.Get(c.Request.Context(), c.Param("id"))
		},
	})

	ez.RegisterAction(g, ez.Action[ProductForm, empty]{
		Method: http.MethodPut,
		Path:   "/products/:id",
		Binder: ez.BindForm,
		Handler: func(c *gin.Context, in *ProductForm) (empty, error) {
			img, err := h.readImage(c)
			if err != nil {
				return empty{}, err
			}
			return empty{}, h.Products.Update(c.Request.Context(), c.Param("id"), in.input(img))
		},
	})

	ez.RegisterAction(g, ez.Action[empty, empty]{
		Method: http.MethodDelete,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.Products.Delete(c.Request.Context(), c.Param("id"))
		},
	})
}
