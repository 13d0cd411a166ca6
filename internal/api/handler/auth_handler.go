package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/service"
	"github.com/sutefu23/report/pkg/response"
)

// AuthHandler 認証 HTTP ハンドラ
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler AuthHandler を生成する
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login ログイン
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "リクエストの形式が正しくありません")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Refresh トークン更新
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "リクエストの形式が正しくありません")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Logout ログアウト。現在のアクセストークンを失効させる
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := ""
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
		token = parts[1]
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, nil)
}

// Me ログイン中のユーザー情報
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}
