package dto

// ── 日報 DTO ──

// TaskRequest 日報内タスクの入力。
// 作業時間 0 のタスクも正当な入力のため required は付けない。
// 値域の検証（合計 24h、進捗率 0〜100）はドメイン層が行う
type TaskRequest struct {
	ProjectID   string  `json:"projectId"   binding:"required"`
	Description string  `json:"description"`
	HoursSpent  float64 `json:"hoursSpent"  binding:"gte=0"`
	Progress    int     `json:"progress"`
}

// CreateDailyReportRequest 日報作成要求
type CreateDailyReportRequest struct {
	Date        string        `json:"date" binding:"required"` // YYYY-MM-DD
	Tasks       []TaskRequest `json:"tasks" binding:"required"`
	Challenges  string        `json:"challenges"`
	NextDayPlan string        `json:"nextDayPlan"`
}

// UpdateDailyReportRequest 日報更新要求。nil のフィールドは変更しない
type UpdateDailyReportRequest struct {
	Tasks       []TaskRequest `json:"tasks"` // nil なら既存タスクを維持
	Challenges  *string       `json:"challenges"`
	NextDayPlan *string       `json:"nextDayPlan"`
}

// ApproveDailyReportRequest 日報承認要求
type ApproveDailyReportRequest struct {
	Feedback *string `json:"feedback"`
}

// RejectDailyReportRequest 日報差し戻し要求。
// 理由の必須チェックはドメイン層が行い、VALIDATION_ERROR として返す
type RejectDailyReportRequest struct {
	Feedback string `json:"feedback"`
}

// DailyReportListRequest 日報一覧の検索条件
type DailyReportListRequest struct {
	PaginationRequest
	UserID string `form:"userId"`
	Status string `form:"status" binding:"omitempty,oneof=draft submitted approved rejected"`
	From   string `form:"from"` // YYYY-MM-DD
	To     string `form:"to"`   // YYYY-MM-DD
}

// TaskResponse タスク応答
type TaskResponse struct {
	ProjectID   string  `json:"projectId"`
	Description string  `json:"description"`
	HoursSpent  float64 `json:"hoursSpent"`
	Progress    int     `json:"progress"`
}

// DailyReportResponse 日報応答
type DailyReportResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Date        string         `json:"date"`
	Tasks       []TaskResponse `json:"tasks"`
	Challenges  string         `json:"challenges"`
	NextDayPlan string         `json:"nextDayPlan"`
	Status      string         `json:"status"`
	TotalHours  float64        `json:"totalHours"`
	SubmittedAt *string        `json:"submittedAt,omitempty"`
	ApprovedAt  *string        `json:"approvedAt,omitempty"`
	ApprovedBy  *string        `json:"approvedBy,omitempty"`
	Feedback    *string        `json:"feedback,omitempty"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}
