package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"catalog-admin/internal/core/auth"
	"catalog-admin/internal/core/config"
	"catalog-admin/internal/core/server"
	"catalog-admin/internal/transport/http/ez"
	mdw "catalog-admin/internal/transport/http/middleware"
)

// Deps 组装 engine 所需的一切
type Deps struct {
	Log  *zap.Logger
	Mode string // gin 模式，空则不改
	HTTP config.HTTP
	// 生产环境打开 HSTS 等严格头
	Production bool

	JWT          *auth.JWTer
	Deny         *auth.Denylist
	Cookie       string
	AuthRequired bool

	// 非空时 /uploads 映射到该目录
	UploadDir string
	// 探活；为空时 /health 只返回 ok
	Ping func() error
}

func NewAPIEngine(d Deps, mods ...Module) *gin.Engine {
	l := d.Log
	if l == nil {
		l = zap.NewNop()
	}
	r := server.NewRouter(l, server.Options{Mode: d.Mode, CORSOrigins: d.HTTP.CORSOrigins})

	h := d.HTTP
	r.Use(
		mdw.RequestID(l),
		mdw.AccessLog(l),
		mdw.Recovery(l),
		mdw.SecureHeaders(d.Production),
		mdw.Metrics(),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		if d.Ping != nil {
			if err := d.Ping(); err != nil {
				l.Warn("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"ok": 0})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": 1})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	// 业务接口才限流、限并发、限包体
	api := r.Group("/api/v1")
	api.Use(limits(h)...)

	var guard []gin.HandlerFunc
	if d.AuthRequired {
		guard = append(guard, mdw.AuthJWT(d.JWT, d.Deny, d.Cookie, l))
	} else {
		l.Warn("auth disabled, protected routes are open")
	}

	public := ez.New(api, l)
	protected := public.Group("", guard...)

	var reg Registry
	reg.Register(mods...)
	reg.MountAll(public, protected)
	return r
}

func limits(h config.HTTP) []gin.HandlerFunc {
	var out []gin.HandlerFunc
	if h.RateLimitRPS > 0 {
		burst := h.RateLimitBurst
		if burst <= 0 {
			burst = int(h.RateLimitRPS)
		}
		out = append(out, mdw.RateLimit(rate.Limit(h.RateLimitRPS), burst))
	}
	if h.MaxConcurrent > 0 {
		out = append(out, mdw.ConcurrencyLimit(h.MaxConcurrent))
	}
	if h.MaxBodyMB > 0 {
		out = append(out, mdw.MaxBodyBytes(int64(h.MaxBodyMB)<<20))
	}
	if h.RequestTimeoutSec > 0 {
		out = append(out, mdw.Timeout(time.Duration(h.RequestTimeoutSec)*time.Second))
	}
	return out
}
