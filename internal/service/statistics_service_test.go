package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/model"
	"github.com/sutefu23/report/internal/repository"
)

func setupStatisticsService() (StatisticsService, *mockStatsRepo, *mockDeptRepo) {
	statsRepo := newMockStatsRepo()
	deptRepo := newMockDeptRepo()
	repo := &repository.Repository{
		Statistics: statsRepo,
		Department: deptRepo,
	}
	svc := NewStatisticsService(repo, zap.NewNop())
	return svc, statsRepo, deptRepo
}

func TestStatisticsService_Personal(t *testing.T) {
	svc, statsRepo, _ := setupStatisticsService()
	statsRepo.personal = &repository.PersonalStatsRow{
		ReportCount:   10,
		ApprovedCount: 8,
		TotalHours:    76.5,
	}
	statsRepo.projectHours = []repository.ProjectHoursRow{
		{ProjectID: "p1", ProjectName: "基幹システム", Hours: 50},
		{ProjectID: "p2", ProjectName: "社内ツール", Hours: 26.5},
	}

	resp, err := svc.Personal(context.Background(), "u1", &dto.StatisticsRequest{
		From: "2026-08-01", To: "2026-08-31",
	})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if resp.ReportCount != 10 || resp.TotalHours != 76.5 {
		t.Errorf("集計値が不正: %+v", resp)
	}
	if len(resp.ProjectHours) != 2 {
		t.Errorf("ProjectHours = %d 件", len(resp.ProjectHours))
	}
}

func TestStatisticsService_Personal_CompletionRate(t *testing.T) {
	svc, statsRepo, _ := setupStatisticsService()
	statsRepo.personal = &repository.PersonalStatsRow{ReportCount: 11}
	statsRepo.thisMonth = 11

	resp, err := svc.Personal(context.Background(), "u1", &dto.StatisticsRequest{
		From: "2026-08-01", To: "2026-08-31",
	})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if resp.ThisMonthReports != 11 {
		t.Errorf("ThisMonthReports = %d, want 11", resp.ThisMonthReports)
	}
	// 想定営業日 22 日に対する 11 件 = 50%
	if resp.CompletionRate != 50 {
		t.Errorf("CompletionRate = %d, want 50", resp.CompletionRate)
	}
}

func TestStatisticsService_Personal_WeeklyTrend(t *testing.T) {
	svc, statsRepo, _ := setupStatisticsService()
	monday := weekMonday(time.Now())
	statsRepo.dailyCounts = []repository.DailyCountRow{
		{ReportDate: monday, Count: 1},
		{ReportDate: monday.AddDate(0, 0, 2), Count: 1},
	}

	resp, err := svc.Personal(context.Background(), "u1", &dto.StatisticsRequest{
		From: "2026-08-01", To: "2026-08-31",
	})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if len(resp.WeeklyTrend) != 5 {
		t.Fatalf("WeeklyTrend = %d 件, want 5", len(resp.WeeklyTrend))
	}

	wantDays := []string{"月", "火", "水", "木", "金"}
	wantCounts := []int{1, 0, 1, 0, 0}
	for i, entry := range resp.WeeklyTrend {
		if entry.Day != wantDays[i] {
			t.Errorf("WeeklyTrend[%d].Day = %q, want %q", i, entry.Day, wantDays[i])
		}
		if entry.Count != wantCounts[i] {
			t.Errorf("WeeklyTrend[%d].Count = %d, want %d", i, entry.Count, wantCounts[i])
		}
	}
}

func TestWeekMonday(t *testing.T) {
	// 2026-08-28 は金曜日。同週の月曜は 2026-08-24
	friday := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	if got := weekMonday(friday); got.Format("2006-01-02") != "2026-08-24" {
		t.Errorf("weekMonday(金) = %s", got.Format("2006-01-02"))
	}

	// 日曜日は前週扱いではなく、その週の月曜（6 日前）へ戻る
	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := weekMonday(sunday); got.Format("2006-01-02") != "2026-08-24" {
		t.Errorf("weekMonday(日) = %s", got.Format("2006-01-02"))
	}

	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	if got := weekMonday(monday); got.Format("2006-01-02") != "2026-08-24" {
		t.Errorf("weekMonday(月) = %s", got.Format("2006-01-02"))
	}
}

func TestStatisticsService_Personal_InvalidPeriod(t *testing.T) {
	svc, _, _ := setupStatisticsService()

	_, err := svc.Personal(context.Background(), "u1", &dto.StatisticsRequest{
		From: "2026-08-31", To: "2026-08-01",
	})
	derr, ok := domain.AsDomainError(err)
	if !ok || derr.Kind != domain.KindValidationError {
		t.Fatalf("ValidationError を期待: %v", err)
	}
}

func TestStatisticsService_Team(t *testing.T) {
	svc, statsRepo, deptRepo := setupStatisticsService()
	deptID := domain.NewDepartmentID().String()
	_ = deptRepo.Create(context.Background(), &model.Department{ID: deptID, Name: "開発部", IsActive: true})

	statsRepo.team = []repository.MemberStatsRow{
		{UserID: "u1", UserName: "山田", ReportCount: 20, ApprovedCount: 18, TotalHours: 150},
		{UserID: "u2", UserName: "佐藤", ReportCount: 19, ApprovedCount: 19, TotalHours: 140},
	}
	statsRepo.activeToday = 1

	resp, err := svc.Team(context.Background(), deptID, &dto.StatisticsRequest{
		From: "2026-08-01", To: "2026-08-31",
	})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if len(resp.Members) != 2 {
		t.Errorf("Members = %d 件", len(resp.Members))
	}
	if resp.TotalHours != 290 {
		t.Errorf("TotalHours = %v, want 290", resp.TotalHours)
	}
	if resp.MemberCount != 2 || resp.ActiveToday != 1 {
		t.Errorf("MemberCount = %d, ActiveToday = %d", resp.MemberCount, resp.ActiveToday)
	}
	// 2 人中 1 人が当日作成済み = 50%
	if resp.CompletionRate != 50 {
		t.Errorf("CompletionRate = %d, want 50", resp.CompletionRate)
	}
}

func TestStatisticsService_Team_DepartmentNotFound(t *testing.T) {
	svc, _, _ := setupStatisticsService()

	_, err := svc.Team(context.Background(), domain.NewDepartmentID().String(), &dto.StatisticsRequest{
		From: "2026-08-01", To: "2026-08-31",
	})
	derr, ok := domain.AsDomainError(err)
	if !ok || derr.Kind != domain.KindNotFound {
		t.Fatalf("NotFound を期待: %v", err)
	}
}
