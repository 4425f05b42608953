package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	KeyRequestID = "X-Request-ID"
	keyLogger    = "logger"
	maxRIDLen    = 64
)

// RequestID 复用上游传入的 id（过长或含控制字符则重新生成），
// 并把带 rid 的 logger 放进上下文，后续日志通过 LoggerFrom 取用
func RequestID(l *zap.Logger) gin.HandlerFunc {
	if l == nil {
		l = zap.NewNop()
	}
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if !validRID(rid) {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Set(keyLogger, l.With(zap.String("rid", rid)))
		c.Next()
	}
}

func validRID(s string) bool {
	if s == "" || len(s) > maxRIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// LoggerFrom 没经过 RequestID 时返回 fallback
func LoggerFrom(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get(keyLogger); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}
