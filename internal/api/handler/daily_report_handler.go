package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/service"
	"github.com/sutefu23/report/pkg/response"
)

// DailyReportHandler 日報 HTTP ハンドラ
type DailyReportHandler struct {
	reportSvc service.DailyReportService
}

// NewDailyReportHandler DailyReportHandler を生成する
func NewDailyReportHandler(reportSvc service.DailyReportService) *DailyReportHandler {
	return &DailyReportHandler{reportSvc: reportSvc}
}

// Create 日報作成（draft 状態で作成される）
// POST /api/v1/daily-reports
func (h *DailyReportHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "リクエストの形式が正しくありません")
		return
	}

	result, err := h.reportSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, result)
}

// Get 日報取得
// GET /api/v1/daily-reports/:id
func (h *DailyReportHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.reportSvc.Get(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// List 日報一覧
// GET /api/v1/daily-reports
func (h *DailyReportHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.DailyReportListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "検索条件が正しくありません")
		return
	}

	result, err := h.reportSvc.List(c.Request.Context(), &req, userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Update 日報更新（draft / rejected のみ、所有者本人のみ）
// PATCH /api/v1/daily-reports/:id
func (h *DailyReportHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "リクエストの形式が正しくありません")
		return
	}

	result, err := h.reportSvc.Update(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Submit 日報提出
// POST /api/v1/daily-reports/:id/submit
func (h *DailyReportHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.reportSvc.Submit(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Approve 日報承認（manager / admin のみ）
// POST /api/v1/daily-reports/:id/approve
func (h *DailyReportHandler) Approve(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	// フィードバックは任意のため、ボディなしの承認も受け付ける
	var req dto.ApproveDailyReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "リクエストの形式が正しくありません")
			return
		}
	}

	result, err := h.reportSvc.Approve(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Reject 日報差し戻し（manager / admin のみ、理由必須）
// POST /api/v1/daily-reports/:id/reject
func (h *DailyReportHandler) Reject(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RejectDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "差し戻し理由を入力してください")
		return
	}

	result, err := h.reportSvc.Reject(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}
