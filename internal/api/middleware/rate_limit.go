package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/pkg/redis"
	"github.com/sutefu23/report/pkg/response"
)

// RateLimit Redis の固定ウィンドウカウンタによるレート制限ミドルウェア。
// limit はウィンドウ内の最大リクエスト数、window はウィンドウ長。
// rdb が nil または Redis 障害時は制限せず通す。
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.TooManyRequests(c, "リクエストが多すぎます。しばらく待ってから再試行してください")
			c.Abort()
			return
		}

		c.Next()
	}
}
