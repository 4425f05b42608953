package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SecureHeaders 常见安全响应头；生产环境强制 https
func SecureHeaders(production bool) gin.HandlerFunc {
	sm := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !production,
	})
	return func(c *gin.Context) {
		if err := sm.Process(c.Writer, c.Request); err != nil {
			// 已重定向或拒绝
			c.Abort()
			return
		}
		// 重定向时 Process 已写出响应
		if status := c.Writer.Status(); status >= 300 && status < 400 {
			c.Abort()
			return
		}
		c.Next()
	}
}
