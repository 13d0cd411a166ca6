package model

import "time"

// DailyReport 日報テーブル — daily_reports
type DailyReport struct {
	ID          string     `gorm:"type:char(26);primaryKey"                                       json:"id"`
	UserID      string     `gorm:"type:char(26);not null;uniqueIndex:uq_daily_reports_user_date"  json:"userId"`
	ReportDate  time.Time  `gorm:"type:date;not null;uniqueIndex:uq_daily_reports_user_date"      json:"reportDate"`
	Challenges  string     `gorm:"type:text;not null;default:''"                                  json:"challenges"`
	NextDayPlan string     `gorm:"type:text;not null;default:''"                                  json:"nextDayPlan"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft'"                      json:"status"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy  *string    `gorm:"type:char(26)" json:"approvedBy,omitempty"`
	Feedback    *string    `gorm:"type:text"     json:"feedback,omitempty"`
	BaseModel

	// 関連。タスクは日報の更新時に全置換するため、常にまとめて読み込む
	Tasks []Task `gorm:"foreignKey:DailyReportID;constraint:OnDelete:CASCADE" json:"tasks"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName テーブル名を指定する
func (DailyReport) TableName() string { return "daily_reports" }

// Task 日報内の作業タスク — tasks
type Task struct {
	ID            string  `gorm:"type:char(26);primaryKey"      json:"id"`
	DailyReportID string  `gorm:"type:char(26);not null;index"  json:"dailyReportId"`
	ProjectID     string  `gorm:"type:char(26);not null"        json:"projectId"`
	Description   string  `gorm:"type:text;not null;default:''" json:"description"`
	HoursSpent    float64 `gorm:"not null"                      json:"hoursSpent"`
	Progress      int     `gorm:"not null"                      json:"progress"`
	SortOrder     int     `gorm:"not null;default:0"            json:"sortOrder"`

	// 関連
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

// TableName テーブル名を指定する
func (Task) TableName() string { return "tasks" }
