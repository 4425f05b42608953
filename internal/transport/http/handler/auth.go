package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"catalog-admin/internal/service"
	"catalog-admin/internal/transport/http/ez"
	mdw "catalog-admin/internal/transport/http/middleware"
)

type loginForm struct {
	UserID   string `json:"userId" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) setCookie(c *gin.Context, value string, maxAge int) {
	if h.Cookie.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie.Name, value, maxAge, "/", "", h.Cookie.Secure, h.Cookie.HTTPOnly)
}

// loginGuard 按 IP 限制登录频率，防爆破
func (h *Handlers) loginGuard() []gin.HandlerFunc {
	n := h.LoginPerMinute
	if n <= 0 {
		return nil
	}
	return []gin.HandlerFunc{mdw.RateLimitPerIP(rate.Every(time.Minute/time.Duration(n)), n)}
}

func (h *Handlers) mountAuth(g ez.EZ) {
	g = g.Group("/auth", h.loginGuard()...)
	// 登录：token 同时放在响应体和 cookie 里
	ez.RegisterAction(g, ez.Action[loginForm, *service.LoginResult]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginForm) (*service.LoginResult, error) {
			res, err := h.Auth.Login(c.Request.Context(), in.UserID, in.Password)
			if err != nil {
				return nil, err
			}
			h.setCookie(c, res.Token, h.Cookie.MaxAge)
			return res, nil
		},
	})

	ez.RegisterAction(g, ez.Action[empty, empty]{
		Method: http.MethodPost,
		Path:   "/logout",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			tok := mdw.TokenFrom(c, h.Cookie.Name)
			h.setCookie(c, "", -1)
			return empty{}, h.Auth.Logout(c.Request.Context(), tok)
		},
	})
}
