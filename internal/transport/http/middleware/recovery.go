package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "catalog-admin/internal/transport/http/response"
)

// Recovery panic 统一返回 500 + "Error Occurs"
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFrom(c, l).Error("panic recovered", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path), zap.Stack("stack"))
				c.AbortWithStatusJSON(resp.HTTPStatus(resp.CodeServerError), resp.Error(resp.CodeServerError, ""))
			}
		}()
		c.Next()
	}
}
