package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/service"
	"catalog-admin/internal/transport/http/ez"
)

type CategoryForm struct {
	NameEn string `json:"categoryNameEn" binding:"required,max=255"`
	NameZh string `json:"categoryNameZh" binding:"max=255"`
}

type BrandForm struct {
	NameEn string `json:"brandNameEn" binding:"required,max=255"`
	NameZh string `json:"brandNameZh" binding:"max=255"`
}

func (f CategoryForm) input() service.NamedInput { return service.NamedInput{NameEn: f.NameEn, NameZh: f.NameZh} }
func (f BrandForm) input() service.NamedInput    { return service.NamedInput{NameEn: f.NameEn, NameZh: f.NameZh} }

// taxonomyAPI 分类与品牌服务的公共形态
type taxonomyAPI[T any] interface {
	Create(ctx context.Context, in service.NamedInput) (*T, error)
	Update(ctx context.Context, id string, in service.NamedInput) error
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, sort domain.Sort) ([]T, error)
	Delete(ctx context.Context, id string) error
}

type namedForm interface {
	CategoryForm | BrandForm
	input() service.NamedInput
}

// mountTaxonomy 一组 REST 接口：POST/GET path，GET/PUT/DELETE path/:id
func mountTaxonomy[T any, F namedForm](g ez.EZ, path string, svc taxonomyAPI[T]) {
	ez.RegisterAction(g, ez.Action[F, *T]{
		Method: http.MethodPost,
		Path:   path,
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *F) (*T, error) {
			return svc.Create(c.Request.Context(), (*in).input())
		},
	})

	ez.RegisterAction(g, ez.Action[listQuery, []T]{
		Method: http.MethodGet,
		Path:   path,
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, q *listQuery) ([]T, error) {
			return svc.List(c.Request.Context(), q.sort())
		},
	})

	ez.RegisterAction(g, ez.Action[empty, *T]{
		Method: http.MethodGet,
		Path:   path + "/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (*T, error) {
			return svc.Get(c.Request.Context(), c.Param("id"))
		},
	})

	ez.RegisterAction(g, ez.Action[F, empty]{
		Method: http.MethodPut,
		Path:   path + "/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *F) (empty, error) {
			return empty{}, svc.Update(c.Request.Context(), c.Param("id"), (*in).input())
		},
	})

	ez.RegisterAction(g, ez.Action[empty, empty]{
		Method: http.MethodDelete,
		Path:   path + "/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, svc.Delete(c.Request.Context(), c.Param("id"))
		},
	})
}

func (h *Handlers) mountCategories(g ez.EZ) {
	mountTaxonomy[domain.Category, CategoryForm](g, "/categories", h.Categories)
}

func (h *Handlers) mountBrands(g ez.EZ) {
	mountTaxonomy[domain.Brand, BrandForm](g, "/brands", h.Brands)
}
