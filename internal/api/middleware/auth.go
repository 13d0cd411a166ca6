package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/pkg/jwt"
	"github.com/sutefu23/report/pkg/redis"
	"github.com/sutefu23/report/pkg/response"
)

// JWTAuth JWT 認証ミドルウェア。
// Authorization: Bearer <token> からアクセストークンを検証し、
// ブラックリスト照合後に userId / role をコンテキストへ注入する。
// rdb が nil の場合はブラックリスト照合を省略する。
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "認証ヘッダがありません")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "認証ヘッダの形式が正しくありません")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "トークンが無効または期限切れです")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, "トークンの種別が正しくありません")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, "トークンは失効しています")
				c.Abort()
				return
			}
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleAuth 役割ベースの認可ミドルウェア。
// 現在のユーザーが指定された役割のいずれかであることを要求する。
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "認証されていません")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "この操作を行う権限がありません")
		c.Abort()
	}
}
