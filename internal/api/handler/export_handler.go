package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/internal/service"
	"github.com/sutefu23/report/pkg/response"
)

// ExportHandler エクスポート HTTP ハンドラ
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler を生成する
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Monthly 月次日報を Excel でダウンロード
// GET /api/v1/daily-reports/export?year=2026&month=8
func (h *ExportHandler) Monthly(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(c, "year を正しく指定してください")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, "month は 1〜12 で指定してください")
		return
	}

	buf, filename, err := h.exportSvc.ExportMonthly(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
