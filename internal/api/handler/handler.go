package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/service"
	"github.com/sutefu23/report/pkg/response"
)

// Handler 全 Handler の集約
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	DailyReport *DailyReportHandler
	Statistics  *StatisticsHandler
	Export      *ExportHandler
}

// NewHandler Handler 集約を生成する
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		DailyReport: NewDailyReportHandler(svc.DailyReport),
		Statistics:  NewStatisticsHandler(svc.Statistics),
		Export:      NewExportHandler(svc.Export),
	}
}

// respondError サービス層のエラーを HTTP レスポンスへ写像する。
// 業務エラー（*domain.Error）は分類に応じたステータス、それ以外は 500。
func respondError(c *gin.Context, err error) {
	if derr, ok := domain.AsDomainError(err); ok {
		response.DomainError(c, derr)
		return
	}
	response.InternalError(c)
}
