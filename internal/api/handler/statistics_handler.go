package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/service"
	"github.com/sutefu23/report/pkg/response"
)

// StatisticsHandler 統計 HTTP ハンドラ
type StatisticsHandler struct {
	statsSvc service.StatisticsService
}

// NewStatisticsHandler StatisticsHandler を生成する
func NewStatisticsHandler(statsSvc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsSvc: statsSvc}
}

// Personal 個人統計
// GET /api/v1/statistics/personal?from=&to=
func (h *StatisticsHandler) Personal(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.StatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "集計期間 from / to を指定してください")
		return
	}

	result, err := h.statsSvc.Personal(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}

// Team チーム統計（manager / admin のみ）
// GET /api/v1/statistics/team/:departmentId?from=&to=
func (h *StatisticsHandler) Team(c *gin.Context) {
	var req dto.StatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "集計期間 from / to を指定してください")
		return
	}

	result, err := h.statsSvc.Team(c.Request.Context(), c.Param("departmentId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, result)
}
