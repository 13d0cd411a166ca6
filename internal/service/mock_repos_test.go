package service

import (
	"context"
	"time"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/model"
	"github.com/sutefu23/report/internal/repository"
)

// ── Mock DailyReportRepository ──

type mockReportRepo struct {
	reports map[domain.DailyReportID]*domain.DailyReport
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[domain.DailyReportID]*domain.DailyReport)}
}

func reportDateKey(userID domain.UserID, date time.Time) string {
	return userID.String() + ":" + date.Format("2006-01-02")
}

func (m *mockReportRepo) FindByID(_ context.Context, id domain.DailyReportID) (*domain.DailyReport, error) {
	if r, ok := m.reports[id]; ok {
		c := *r
		return &c, nil
	}
	return nil, nil
}

func (m *mockReportRepo) FindByUserAndDate(_ context.Context, userID domain.UserID, date time.Time) (*domain.DailyReport, error) {
	key := reportDateKey(userID, date)
	for _, r := range m.reports {
		if reportDateKey(r.UserID, r.Date) == key {
			c := *r
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockReportRepo) Create(_ context.Context, report *domain.DailyReport) (*domain.DailyReport, error) {
	key := reportDateKey(report.UserID, report.Date)
	for _, r := range m.reports {
		if reportDateKey(r.UserID, r.Date) == key {
			return nil, domain.ErrConflict
		}
	}
	c := *report
	m.reports[report.ID] = &c
	return report, nil
}

func (m *mockReportRepo) Update(_ context.Context, report *domain.DailyReport) (*domain.DailyReport, error) {
	c := *report
	m.reports[report.ID] = &c
	return report, nil
}

func (m *mockReportRepo) List(_ context.Context, filter repository.DailyReportFilter) ([]domain.DailyReport, int64, error) {
	var result []domain.DailyReport
	for _, r := range m.reports {
		if filter.UserID != "" && r.UserID.String() != filter.UserID {
			continue
		}
		if filter.Status != "" && string(r.Status) != filter.Status {
			continue
		}
		result = append(result, *r)
	}
	return result, int64(len(result)), nil
}

func (m *mockReportRepo) ListByUserAndPeriod(_ context.Context, userID string, from, to time.Time) ([]domain.DailyReport, error) {
	var result []domain.DailyReport
	for _, r := range m.reports {
		if r.UserID.String() != userID {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[domain.UserID]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[domain.UserID]*domain.User)}
}

func (m *mockUserRepo) add(user *domain.User) {
	c := *user
	m.users[user.ID] = &c
}

func (m *mockUserRepo) FindByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindApprover(_ context.Context, id domain.UserID) (*domain.Approver, error) {
	if u, ok := m.users[id]; ok && u.IsActive {
		return &domain.Approver{ID: u.ID, Role: u.Role}, nil
	}
	return nil, nil
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, domain.ErrConflict
		}
	}
	c := *user
	m.users[user.ID] = &c
	return user, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	c := *user
	m.users[user.ID] = &c
	return user, nil
}

func (m *mockUserRepo) List(_ context.Context, filter repository.UserFilter) ([]domain.User, int64, error) {
	var result []domain.User
	for _, u := range m.users {
		if filter.DepartmentID != "" && u.DepartmentID.String() != filter.DepartmentID {
			continue
		}
		if filter.Role != "" && string(u.Role) != filter.Role {
			continue
		}
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts map[string]*model.Department
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{depts: make(map[string]*model.Department)}
}

func (m *mockDeptRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, nil
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.depts {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	m.depts[dept.ID] = dept
	return nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[string]*model.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*model.Project)}
}

func (m *mockProjectRepo) GetByID(_ context.Context, id string) (*model.Project, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (m *mockProjectRepo) List(_ context.Context) ([]model.Project, error) {
	var result []model.Project
	for _, p := range m.projects {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockProjectRepo) Create(_ context.Context, project *model.Project) error {
	m.projects[project.ID] = project
	return nil
}

// ── Mock StatisticsRepository ──

type mockStatsRepo struct {
	personal     *repository.PersonalStatsRow
	projectHours []repository.ProjectHoursRow
	thisMonth    int64
	dailyCounts  []repository.DailyCountRow
	team         []repository.MemberStatsRow
	activeToday  int64
}

func newMockStatsRepo() *mockStatsRepo {
	return &mockStatsRepo{personal: &repository.PersonalStatsRow{}}
}

func (m *mockStatsRepo) PersonalStats(_ context.Context, _ string, _, _ time.Time) (*repository.PersonalStatsRow, error) {
	return m.personal, nil
}

func (m *mockStatsRepo) PersonalProjectHours(_ context.Context, _ string, _, _ time.Time) ([]repository.ProjectHoursRow, error) {
	return m.projectHours, nil
}

func (m *mockStatsRepo) CountReports(_ context.Context, _ string, _, _ time.Time) (int64, error) {
	return m.thisMonth, nil
}

func (m *mockStatsRepo) DailyReportCounts(_ context.Context, _ string, _, _ time.Time) ([]repository.DailyCountRow, error) {
	return m.dailyCounts, nil
}

func (m *mockStatsRepo) TeamStats(_ context.Context, _ string, _, _ time.Time) ([]repository.MemberStatsRow, error) {
	return m.team, nil
}

func (m *mockStatsRepo) ActiveMemberCount(_ context.Context, _ string, _ time.Time) (int64, error) {
	return m.activeToday, nil
}
