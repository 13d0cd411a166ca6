package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sutefu23/report/internal/model"
)

// PersonalStatsRow 個人統計の生データ
type PersonalStatsRow struct {
	ReportCount    int
	SubmittedCount int
	ApprovedCount  int
	RejectedCount  int
	TotalHours     float64
}

// ProjectHoursRow プロジェクト別の作業時間集計行
type ProjectHoursRow struct {
	ProjectID   string
	ProjectName string
	Hours       float64
}

// MemberStatsRow チームメンバー 1 人分の集計行
type MemberStatsRow struct {
	UserID        string
	UserName      string
	ReportCount   int
	ApprovedCount int
	TotalHours    float64
}

// DailyCountRow 日別の日報件数
type DailyCountRow struct {
	ReportDate time.Time
	Count      int
}

// StatisticsRepository 統計集計インターフェース
type StatisticsRepository interface {
	PersonalStats(ctx context.Context, userID string, from, to time.Time) (*PersonalStatsRow, error)
	PersonalProjectHours(ctx context.Context, userID string, from, to time.Time) ([]ProjectHoursRow, error)
	CountReports(ctx context.Context, userID string, from, to time.Time) (int64, error)
	DailyReportCounts(ctx context.Context, userID string, from, to time.Time) ([]DailyCountRow, error)
	TeamStats(ctx context.Context, departmentID string, from, to time.Time) ([]MemberStatsRow, error)
	ActiveMemberCount(ctx context.Context, departmentID string, day time.Time) (int64, error)
}

// statisticsRepo StatisticsRepository の GORM 実装
type statisticsRepo struct {
	db *gorm.DB
}

// NewStatisticsRepo StatisticsRepository を生成する
func NewStatisticsRepo(db *gorm.DB) StatisticsRepository {
	return &statisticsRepo{db: db}
}

func (r *statisticsRepo) PersonalStats(ctx context.Context, userID string, from, to time.Time) (*PersonalStatsRow, error) {
	var row PersonalStatsRow
	err := r.db.WithContext(ctx).Model(&model.DailyReport{}).
		Select(
			"COUNT(*) AS report_count",
			"COUNT(*) FILTER (WHERE status IN ('submitted', 'approved', 'rejected')) AS submitted_count",
			"COUNT(*) FILTER (WHERE status = 'approved') AS approved_count",
			"COUNT(*) FILTER (WHERE status = 'rejected') AS rejected_count",
		).
		Where("user_id = ? AND report_date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Table("tasks t").
		Select("COALESCE(SUM(t.hours_spent), 0)").
		Joins("JOIN daily_reports r ON r.id = t.daily_report_id").
		Where("r.user_id = ? AND r.report_date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Scan(&row.TotalHours).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *statisticsRepo) PersonalProjectHours(ctx context.Context, userID string, from, to time.Time) ([]ProjectHoursRow, error) {
	var rows []ProjectHoursRow
	err := r.db.WithContext(ctx).
		Table("tasks t").
		Select("t.project_id AS project_id", "p.name AS project_name", "SUM(t.hours_spent) AS hours").
		Joins("JOIN daily_reports r ON r.id = t.daily_report_id").
		Joins("JOIN projects p ON p.id = t.project_id").
		Where("r.user_id = ? AND r.report_date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Group("t.project_id, p.name").
		Order("hours DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statisticsRepo) CountReports(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DailyReport{}).
		Where("user_id = ? AND report_date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statisticsRepo) DailyReportCounts(ctx context.Context, userID string, from, to time.Time) ([]DailyCountRow, error) {
	var rows []DailyCountRow
	err := r.db.WithContext(ctx).Model(&model.DailyReport{}).
		Select("report_date", "COUNT(*) AS count").
		Where("user_id = ? AND report_date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Group("report_date").
		Order("report_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statisticsRepo) TeamStats(ctx context.Context, departmentID string, from, to time.Time) ([]MemberStatsRow, error) {
	var rows []MemberStatsRow
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(
			"u.id AS user_id",
			"u.name AS user_name",
			"COUNT(r.id) AS report_count",
			"COUNT(r.id) FILTER (WHERE r.status = 'approved') AS approved_count",
			"COALESCE(SUM(t.hours), 0) AS total_hours",
		).
		Joins("LEFT JOIN daily_reports r ON r.user_id = u.id AND r.report_date BETWEEN ? AND ?",
			dateOnly(from), dateOnly(to)).
		Joins("LEFT JOIN LATERAL (SELECT SUM(hours_spent) AS hours FROM tasks WHERE daily_report_id = r.id) t ON true").
		Where("u.department_id = ? AND u.is_active = true", departmentID).
		Group("u.id, u.name").
		Order("u.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statisticsRepo) ActiveMemberCount(ctx context.Context, departmentID string, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("daily_reports r").
		Select("COUNT(DISTINCT r.user_id)").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("u.department_id = ? AND u.is_active = true AND r.report_date = ?", departmentID, dateOnly(day)).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
