package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/internal/domain"
)

// Response 統一レスポンス構造
type Response struct {
	Code    string      `json:"code,omitempty"` // 業務エラーコード（成功時は空）
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ── 成功レスポンス ──

// OK 200
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Message: "success", Data: data})
}

// Created 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Message: "success", Data: data})
}

// ── エラーレスポンス ──

// Error 汎用エラーレスポンス
func Error(c *gin.Context, httpStatus int, code, message string) {
	c.JSON(httpStatus, Response{Code: code, Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, string(domain.CodeUnauthorized), message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, string(domain.CodeForbidden), message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "サーバー内部エラーが発生しました")
}

// DomainError 業務エラーを HTTP ステータスへ写像して返す。
// エラー分類に応じたステータスを選び、元のコード・メッセージを
// そのまま保持する（汎用文言への置き換えはしない）。
func DomainError(c *gin.Context, err *domain.Error) {
	status := http.StatusBadRequest
	switch err.Kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindAlreadyExists:
		status = http.StatusConflict
	case domain.KindValidationError:
		status = http.StatusBadRequest
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindBusinessRuleViolation:
		status = http.StatusConflict
	}

	code := string(err.Code)
	if code == "" {
		code = string(err.Kind)
	}

	c.JSON(status, Response{Code: code, Message: err.Message, Details: err.Details})
}
