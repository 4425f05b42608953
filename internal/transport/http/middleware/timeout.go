package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	resp "catalog-admin/internal/transport/http/response"
)

// Timeout 给下游（DB 查询等）一个截止时间
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			c.AbortWithStatusJSON(resp.HTTPStatus(resp.CodeTimeout), resp.Error(resp.CodeTimeout, ""))
		}
	}
}
