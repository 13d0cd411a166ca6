package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/pkg/response"
)

// BodyLimit リクエストボディのサイズ上限ミドルウェア。
// maxBytes は許容する最大バイト数（例: 1<<20 = 1MB）。
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "リクエストボディが大きすぎます")
				return
			}
		}
	}
}
