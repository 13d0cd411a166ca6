package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/model"
)

// DailyReportFilter 日報一覧の検索条件
type DailyReportFilter struct {
	UserID string
	Status string
	From   *time.Time
	To     *time.Time
	Offset int
	Limit  int
}

// DailyReportRepository 日報データアクセスインターフェース。
// ワークフローが要求するポートに一覧取得を加えたもの。
type DailyReportRepository interface {
	domain.DailyReportRepository
	List(ctx context.Context, filter DailyReportFilter) ([]domain.DailyReport, int64, error)
	ListByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyReport, error)
}

// dailyReportRepo DailyReportRepository の GORM 実装
type dailyReportRepo struct {
	db *gorm.DB
}

// NewDailyReportRepo DailyReportRepository を生成する
func NewDailyReportRepo(db *gorm.DB) DailyReportRepository {
	return &dailyReportRepo{db: db}
}

func (r *dailyReportRepo) FindByID(ctx context.Context, id domain.DailyReportID) (*domain.DailyReport, error) {
	var m model.DailyReport
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("id = ?", string(id)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainReport(&m), nil
}

func (r *dailyReportRepo) FindByUserAndDate(ctx context.Context, userID domain.UserID, date time.Time) (*domain.DailyReport, error) {
	var m model.DailyReport
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("user_id = ? AND report_date = ?", string(userID), dateOnly(date)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainReport(&m), nil
}

func (r *dailyReportRepo) Create(ctx context.Context, report *domain.DailyReport) (*domain.DailyReport, error) {
	m := toModelReport(report)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return toDomainReport(m), nil
}

// Update 日報本体を更新し、タスク一覧を全削除→再作成で置き換える。
// 途中失敗でタスクが消失しないよう、全体を 1 トランザクションで行う。
func (r *dailyReportRepo) Update(ctx context.Context, report *domain.DailyReport) (*domain.DailyReport, error) {
	m := toModelReport(report)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_report_id = ?", m.ID).Delete(&model.Task{}).Error; err != nil {
			return err
		}

		tasks := m.Tasks
		m.Tasks = nil
		if err := tx.Model(&model.DailyReport{}).Where("id = ?", m.ID).
			Updates(map[string]interface{}{
				"challenges":    m.Challenges,
				"next_day_plan": m.NextDayPlan,
				"status":        m.Status,
				"submitted_at":  m.SubmittedAt,
				"approved_at":   m.ApprovedAt,
				"approved_by":   m.ApprovedBy,
				"feedback":      m.Feedback,
				"updated_at":    m.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		if len(tasks) > 0 {
			if err := tx.Create(&tasks).Error; err != nil {
				return err
			}
		}
		m.Tasks = tasks
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}

	return toDomainReport(m), nil
}

func (r *dailyReportRepo) List(ctx context.Context, filter DailyReportFilter) ([]domain.DailyReport, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.DailyReport{})

	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		db = db.Where("report_date >= ?", dateOnly(*filter.From))
	}
	if filter.To != nil {
		db = db.Where("report_date <= ?", dateOnly(*filter.To))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []model.DailyReport
	if err := db.Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Offset(filter.Offset).Limit(filter.Limit).
		Order("report_date DESC").
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	reports := make([]domain.DailyReport, 0, len(models))
	for i := range models {
		reports = append(reports, *toDomainReport(&models[i]))
	}
	return reports, total, nil
}

func (r *dailyReportRepo) ListByUserAndPeriod(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyReport, error) {
	var models []model.DailyReport
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("user_id = ? AND report_date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Order("report_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	reports := make([]domain.DailyReport, 0, len(models))
	for i := range models {
		reports = append(reports, *toDomainReport(&models[i]))
	}
	return reports, nil
}

// ── model ↔ domain 変換 ──

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toModelReport(d *domain.DailyReport) *model.DailyReport {
	m := &model.DailyReport{
		ID:          string(d.ID),
		UserID:      string(d.UserID),
		ReportDate:  dateOnly(d.Date),
		Challenges:  d.Challenges,
		NextDayPlan: d.NextDayPlan,
		Status:      string(d.Status),
		SubmittedAt: d.SubmittedAt,
		ApprovedAt:  d.ApprovedAt,
		Feedback:    d.Feedback,
	}
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt
	if d.ApprovedBy != nil {
		s := string(*d.ApprovedBy)
		m.ApprovedBy = &s
	}
	for i, t := range d.Tasks {
		m.Tasks = append(m.Tasks, model.Task{
			ID:            string(domain.NewTaskID()),
			DailyReportID: m.ID,
			ProjectID:     string(t.ProjectID),
			Description:   t.Description,
			HoursSpent:    t.HoursSpent,
			Progress:      t.Progress,
			SortOrder:     i,
		})
	}
	return m
}

func toDomainReport(m *model.DailyReport) *domain.DailyReport {
	d := &domain.DailyReport{
		ID:          domain.DailyReportID(m.ID),
		UserID:      domain.UserID(m.UserID),
		Date:        m.ReportDate,
		Challenges:  m.Challenges,
		NextDayPlan: m.NextDayPlan,
		Status:      domain.DailyReportStatus(m.Status),
		SubmittedAt: m.SubmittedAt,
		ApprovedAt:  m.ApprovedAt,
		Feedback:    m.Feedback,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.ApprovedBy != nil {
		id := domain.UserID(*m.ApprovedBy)
		d.ApprovedBy = &id
	}
	for _, t := range m.Tasks {
		d.Tasks = append(d.Tasks, domain.Task{
			ProjectID:   domain.ProjectID(t.ProjectID),
			Description: t.Description,
			HoursSpent:  t.HoursSpent,
			Progress:    t.Progress,
		})
	}
	return d
}
