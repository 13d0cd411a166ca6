package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/repository"
)

// expectedMonthlyReports 達成率の分母となる月あたりの想定営業日数
const expectedMonthlyReports = 22

var trendWeekdays = []string{"月", "火", "水", "木", "金"}

// monthRange now が属する月の初日と末日を返す
func monthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// weekMonday now が属する週の月曜日を返す
func weekMonday(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(now.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// completionRate count を expected に対する百分率へ丸める
func completionRate(count int64, expected int) int {
	if expected <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(expected) * 100))
}

// StatisticsService 統計のユースケース窓口
type StatisticsService interface {
	Personal(ctx context.Context, userID string, req *dto.StatisticsRequest) (*dto.PersonalStatisticsResponse, error)
	Team(ctx context.Context, departmentID string, req *dto.StatisticsRequest) (*dto.TeamStatisticsResponse, error)
}

type statisticsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatisticsService StatisticsService を生成する
func NewStatisticsService(repo *repository.Repository, logger *zap.Logger) StatisticsService {
	return &statisticsService{repo: repo, logger: logger}
}

func (s *statisticsService) Personal(ctx context.Context, userID string, req *dto.StatisticsRequest) (*dto.PersonalStatisticsResponse, error) {
	from, derr := parseDate(req.From)
	if derr != nil {
		return nil, derr
	}
	to, derr := parseDate(req.To)
	if derr != nil {
		return nil, derr
	}
	if to.Before(from) {
		return nil, domain.ValidationError("集計期間の終了日は開始日以降を指定してください")
	}

	stats, err := s.repo.Statistics.PersonalStats(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	projectRows, err := s.repo.Statistics.PersonalProjectHours(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	projects := make([]dto.ProjectHours, 0, len(projectRows))
	for _, row := range projectRows {
		projects = append(projects, dto.ProjectHours{
			ProjectID:   row.ProjectID,
			ProjectName: row.ProjectName,
			Hours:       row.Hours,
		})
	}

	now := time.Now()
	monthStart, monthEnd := monthRange(now)
	thisMonth, err := s.repo.Statistics.CountReports(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	trend, err := s.weeklyTrend(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &dto.PersonalStatisticsResponse{
		UserID:           userID,
		From:             req.From,
		To:               req.To,
		ReportCount:      stats.ReportCount,
		SubmittedCount:   stats.SubmittedCount,
		ApprovedCount:    stats.ApprovedCount,
		RejectedCount:    stats.RejectedCount,
		TotalHours:       stats.TotalHours,
		ThisMonthReports: int(thisMonth),
		CompletionRate:   completionRate(thisMonth, expectedMonthlyReports),
		WeeklyTrend:      trend,
		ProjectHours:     projects,
	}, nil
}

// weeklyTrend 今週の月〜金の日報件数を曜日ラベル付きで返す
func (s *statisticsService) weeklyTrend(ctx context.Context, userID string, now time.Time) ([]dto.DailyTrend, error) {
	monday := weekMonday(now)
	rows, err := s.repo.Statistics.DailyReportCounts(ctx, userID, monday, monday.AddDate(0, 0, 4))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int, len(rows))
	for _, row := range rows {
		byDate[row.ReportDate.Format(dateLayout)] = row.Count
	}

	trend := make([]dto.DailyTrend, 0, len(trendWeekdays))
	for i, day := range trendWeekdays {
		date := monday.AddDate(0, 0, i)
		trend = append(trend, dto.DailyTrend{Day: day, Count: byDate[date.Format(dateLayout)]})
	}
	return trend, nil
}

func (s *statisticsService) Team(ctx context.Context, departmentID string, req *dto.StatisticsRequest) (*dto.TeamStatisticsResponse, error) {
	from, derr := parseDate(req.From)
	if derr != nil {
		return nil, derr
	}
	to, derr := parseDate(req.To)
	if derr != nil {
		return nil, derr
	}
	if to.Before(from) {
		return nil, domain.ValidationError("集計期間の終了日は開始日以降を指定してください")
	}

	dept, err := s.repo.Department.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.NotFound("部門が見つかりません")
	}

	rows, err := s.repo.Statistics.TeamStats(ctx, departmentID, from, to)
	if err != nil {
		return nil, err
	}

	members := make([]dto.MemberStatistics, 0, len(rows))
	var totalHours float64
	for _, row := range rows {
		members = append(members, dto.MemberStatistics{
			UserID:        row.UserID,
			UserName:      row.UserName,
			ReportCount:   row.ReportCount,
			ApprovedCount: row.ApprovedCount,
			TotalHours:    row.TotalHours,
		})
		totalHours += row.TotalHours
	}

	activeToday, err := s.repo.Statistics.ActiveMemberCount(ctx, departmentID, time.Now())
	if err != nil {
		return nil, err
	}

	return &dto.TeamStatisticsResponse{
		DepartmentID:   departmentID,
		From:           req.From,
		To:             req.To,
		MemberCount:    len(members),
		ActiveToday:    int(activeToday),
		CompletionRate: completionRate(activeToday, len(members)),
		Members:        members,
		TotalHours:     totalHours,
	}, nil
}
