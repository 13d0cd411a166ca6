package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/pkg/response"
)

// MustGetUserID Gin コンテキストから userId を取り出す。
// JWT ミドルウェアが注入していなければ 401 を書き込み false を返す。
// 呼び出し側は ok=false のとき即 return すること。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userId")
	if !exists {
		response.Unauthorized(c, "認証されていません")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "認証されていません")
		return "", false
	}
	return s, true
}

// MustGetRole Gin コンテキストから role を取り出す。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "認証されていません")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "認証されていません")
		return "", false
	}
	return s, true
}
