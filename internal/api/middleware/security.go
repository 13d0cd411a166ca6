package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders セキュリティ HTTP ヘッダミドルウェア。
// クリックジャッキング・MIME スニッフィング・XSS への基本的な対策ヘッダを付与する。
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		c.Next()
	}
}
