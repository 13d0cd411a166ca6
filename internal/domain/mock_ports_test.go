package domain

import (
	"context"
	"fmt"
	"time"
)

// ── Mock DailyReportRepository ──

type mockReportRepo struct {
	reports map[DailyReportID]*DailyReport
	// 呼び出し失敗を注入するためのフック
	createErr error
	updateErr error
	findErr   error
}

func newMockReportRepo() *mockReportRepo {
	return &mockReportRepo{reports: make(map[DailyReportID]*DailyReport)}
}

func dateKey(userID UserID, date time.Time) string {
	return fmt.Sprintf("%s:%s", userID, date.Format("2006-01-02"))
}

func (m *mockReportRepo) FindByID(_ context.Context, id DailyReportID) (*DailyReport, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if r, ok := m.reports[id]; ok {
		clone := *r
		return &clone, nil
	}
	return nil, nil
}

func (m *mockReportRepo) FindByUserAndDate(_ context.Context, userID UserID, date time.Time) (*DailyReport, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, r := range m.reports {
		if dateKey(r.UserID, r.Date) == dateKey(userID, date) {
			clone := *r
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockReportRepo) Create(_ context.Context, report *DailyReport) (*DailyReport, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, r := range m.reports {
		if dateKey(r.UserID, r.Date) == dateKey(report.UserID, report.Date) {
			return nil, ErrConflict
		}
	}
	clone := *report
	m.reports[report.ID] = &clone
	return report, nil
}

func (m *mockReportRepo) Update(_ context.Context, report *DailyReport) (*DailyReport, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	clone := *report
	m.reports[report.ID] = &clone
	return report, nil
}

// ── Mock ApproverRepository ──

type mockApproverRepo struct {
	approvers map[UserID]*Approver
}

func newMockApproverRepo() *mockApproverRepo {
	return &mockApproverRepo{approvers: make(map[UserID]*Approver)}
}

func (m *mockApproverRepo) add(id UserID, role UserRole) {
	m.approvers[id] = &Approver{ID: id, Role: role}
}

func (m *mockApproverRepo) FindApprover(_ context.Context, id UserID) (*Approver, error) {
	if a, ok := m.approvers[id]; ok {
		return a, nil
	}
	return nil, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[UserID]*User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[UserID]*User)}
}

func (m *mockUserRepo) FindByID(_ context.Context, id UserID) (*User, error) {
	if u, ok := m.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Create(_ context.Context, user *User) (*User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, ErrConflict
		}
	}
	clone := *user
	m.users[user.ID] = &clone
	out := *user
	return &out, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *User) (*User, error) {
	clone := *user
	m.users[user.ID] = &clone
	return user, nil
}

// ── Mock PasswordHasher / TokenGenerator ──

// mockHasher は平文に接頭辞を付けるだけの決定的ハッシュ。
type mockHasher struct{}

func (mockHasher) Hash(_ context.Context, password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(_ context.Context, password, hash string) (bool, error) {
	return hash == "hashed:"+password, nil
}

type mockTokenGenerator struct{}

func (mockTokenGenerator) Generate(userID UserID, role UserRole) (*AuthToken, error) {
	return &AuthToken{
		AccessToken:  fmt.Sprintf("access:%s:%s", userID, role),
		RefreshToken: fmt.Sprintf("refresh:%s:%s", userID, role),
		ExpiresIn:    604800,
	}, nil
}
