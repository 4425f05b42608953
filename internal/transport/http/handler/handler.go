// Package handler 请求形状 <-> 服务调用；校验在这里做完，服务只收干净的入参
package handler

import (
	"strings"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/service"
	"catalog-admin/internal/transport/http/ez"
)

// Cookie 登录成功后写入的 token cookie
type Cookie struct {
	Name     string
	MaxAge   int // 秒
	Secure   bool
	HTTPOnly bool
}

type Handlers struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Roles      *service.RoleService
	Categories *service.CategoryService
	Brands     *service.BrandService
	Products   *service.ProductService
	Menu       *service.MenuService
	Email      *service.EmailService

	Cookie Cookie
	// 单张图片上限（字节）
	MaxImageBytes int64
	// 每 IP 每分钟登录次数，0 不限
	LoginPerMinute int
}

// listQuery ?orderBy=createdAt&order=desc
type listQuery struct {
	OrderBy string `form:"orderBy"`
	Order   string `form:"order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

func (q listQuery) sort() domain.Sort {
	return domain.Sort{Key: strings.TrimSpace(q.OrderBy), Desc: strings.EqualFold(q.Order, "desc")}
}

// Mount public 无需登录，protected 已挂鉴权中间件
func (h *Handlers) Mount(public, protected ez.EZ) {
	h.mountAuth(public)
	h.mountMenu(public)

	h.mountRoles(protected)
	h.mountUsers(protected)
	h.mountCategories(protected)
	h.mountBrands(protected)
	h.mountProducts(protected)
	h.mountEmail(protected)
}

type empty struct{}
