package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog-admin/internal/core/auth"
	resp "catalog-admin/internal/transport/http/response"
)

const (
	KeyClaims = "claims"
	KeyUserID = "userId"
)

// TokenFrom 先取 Authorization: Bearer，再取 cookie
func TokenFrom(c *gin.Context, cookie string) string {
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))
	}
	if cookie != "" {
		if v, err := c.Cookie(cookie); err == nil {
			return v
		}
	}
	return ""
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(resp.HTTPStatus(resp.CodeUnauthorized), resp.Error(resp.CodeUnauthorized, msg))
}

// AuthJWT 校验签名与有效期，并拒绝已注销的 token；redis 故障时放行并记日志
func AuthJWT(j *auth.JWTer, deny *auth.Denylist, cookie string, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := TokenFrom(c, cookie)
		if tok == "" {
			unauthorized(c, "missing token")
			return
		}
		claims, err := j.Parse(tok)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}
		revoked, err := deny.Revoked(c.Request.Context(), claims)
		if err != nil {
			l.Warn("denylist lookup failed", zap.Error(err))
		}
		if revoked {
			unauthorized(c, "token revoked")
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
