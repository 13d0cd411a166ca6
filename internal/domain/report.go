package domain

import "time"

// DailyReportStatus は日報の状態。
//
//	draft --submit--> submitted --approve--> approved（終端）
//	draft --submit--> submitted --reject---> rejected
//	rejected --update--> rejected --submit--> submitted（再提出）
//	draft --update--> draft
type DailyReportStatus string

const (
	StatusDraft     DailyReportStatus = "draft"
	StatusSubmitted DailyReportStatus = "submitted"
	StatusApproved  DailyReportStatus = "approved"
	StatusRejected  DailyReportStatus = "rejected"
)

// Editable は編集（update）可能な状態かを返す。
func (s DailyReportStatus) Editable() bool {
	return s == StatusDraft || s == StatusRejected
}

// Task は日報内の 1 作業項目。
type Task struct {
	ProjectID   ProjectID
	Description string
	HoursSpent  float64
	Progress    int // 進捗率 0〜100
}

// DailyReport は日報エンティティ。
// (UserID, Date) の組が自然キーで、1 ユーザー 1 日 1 件まで。
type DailyReport struct {
	ID          DailyReportID
	UserID      UserID
	Date        time.Time // 暦日。時刻成分は持たない
	Tasks       []Task
	Challenges  string
	NextDayPlan string
	Status      DailyReportStatus
	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	ApprovedBy  *UserID
	Feedback    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalHours は全タスクの作業時間合計を返す。
func (r *DailyReport) TotalHours() float64 {
	var sum float64
	for _, t := range r.Tasks {
		sum += t.HoursSpent
	}
	return sum
}

// ── 入力 ──

// CreateDailyReportInput は日報作成の入力。
type CreateDailyReportInput struct {
	UserID      UserID
	Date        time.Time
	Tasks       []Task
	Challenges  string
	NextDayPlan string
}

// UpdateDailyReportInput は日報更新の入力。
// Tasks が nil、Challenges / NextDayPlan が nil のフィールドは変更しない。
// UserID は呼び出し元（本人）の識別に使い、所有者以外の更新を拒否する。
type UpdateDailyReportInput struct {
	ID          DailyReportID
	UserID      UserID
	Tasks       []Task
	Challenges  *string
	NextDayPlan *string
}

// SubmitDailyReportInput は日報提出の入力。
type SubmitDailyReportInput struct {
	ID     DailyReportID
	UserID UserID
}

// ApproveDailyReportInput は日報承認の入力。Feedback は任意。
type ApproveDailyReportInput struct {
	ID         DailyReportID
	ApproverID UserID
	Feedback   *string
}

// RejectDailyReportInput は日報差し戻しの入力。Feedback は必須。
type RejectDailyReportInput struct {
	ID         DailyReportID
	ApproverID UserID
	Feedback   string
}
