package dto

// ── 統計 DTO ──

// StatisticsRequest 統計の集計期間
type StatisticsRequest struct {
	From string `form:"from" binding:"required"` // YYYY-MM-DD
	To   string `form:"to"   binding:"required"` // YYYY-MM-DD
}

// ProjectHours プロジェクト別の作業時間内訳
type ProjectHours struct {
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Hours       float64 `json:"hours"`
}

// DailyTrend 曜日別の提出件数
type DailyTrend struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// PersonalStatisticsResponse 個人統計応答。
// 達成率は当月の日報件数を想定営業日数に対する割合で表す
type PersonalStatisticsResponse struct {
	UserID           string         `json:"userId"`
	From             string         `json:"from"`
	To               string         `json:"to"`
	ReportCount      int            `json:"reportCount"`
	SubmittedCount   int            `json:"submittedCount"`
	ApprovedCount    int            `json:"approvedCount"`
	RejectedCount    int            `json:"rejectedCount"`
	TotalHours       float64        `json:"totalHours"`
	ThisMonthReports int            `json:"thisMonthReports"`
	CompletionRate   int            `json:"completionRate"`
	WeeklyTrend      []DailyTrend   `json:"weeklyTrend"`
	ProjectHours     []ProjectHours `json:"projectHours"`
}

// MemberStatistics チームメンバー 1 人分の集計
type MemberStatistics struct {
	UserID        string  `json:"userId"`
	UserName      string  `json:"userName"`
	ReportCount   int     `json:"reportCount"`
	ApprovedCount int     `json:"approvedCount"`
	TotalHours    float64 `json:"totalHours"`
}

// TeamStatisticsResponse チーム統計応答。
// ActiveToday は当日に日報を作成した部門メンバーの人数
type TeamStatisticsResponse struct {
	DepartmentID   string             `json:"departmentId"`
	From           string             `json:"from"`
	To             string             `json:"to"`
	MemberCount    int                `json:"memberCount"`
	ActiveToday    int                `json:"activeToday"`
	CompletionRate int                `json:"completionRate"`
	Members        []MemberStatistics `json:"members"`
	TotalHours     float64            `json:"totalHours"`
}
