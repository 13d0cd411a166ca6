package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/model"
	"github.com/sutefu23/report/internal/repository"
)

// ── テスト補助 ──

func setupUserService() (UserService, *mockUserRepo, *mockDeptRepo) {
	userRepo := newMockUserRepo()
	deptRepo := newMockDeptRepo()
	repo := &repository.Repository{
		User:       userRepo,
		Department: deptRepo,
	}
	workflow := domain.NewUserWorkflow(userRepo, NewBcryptHasher(), nil, domain.PasswordPolicy{})
	svc := NewUserService(workflow, repo, zap.NewNop())
	return svc, userRepo, deptRepo
}

func addTestDepartment(deptRepo *mockDeptRepo) string {
	id := domain.NewDepartmentID().String()
	_ = deptRepo.Create(context.Background(), &model.Department{ID: id, Name: "開発部", IsActive: true})
	return id
}

func validCreateUserRequest(deptID string) *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		Email:        "taro@example.com",
		Password:     "Passw0rd123",
		Name:         "山田太郎",
		Role:         "employee",
		DepartmentID: deptID,
	}
}

// ── Create ──

func TestUserService_Create_Success(t *testing.T) {
	svc, _, deptRepo := setupUserService()
	deptID := addTestDepartment(deptRepo)

	resp, err := svc.Create(context.Background(), validCreateUserRequest(deptID))
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if resp.Email != "taro@example.com" {
		t.Errorf("Email = %q", resp.Email)
	}
	if !resp.IsActive {
		t.Error("作成直後は有効であるべき")
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc, _, deptRepo := setupUserService()
	deptID := addTestDepartment(deptRepo)

	req := validCreateUserRequest(deptID)
	req.Role = "superuser"

	_, err := svc.Create(context.Background(), req)
	derr, ok := domain.AsDomainError(err)
	if !ok || derr.Kind != domain.KindValidationError {
		t.Fatalf("ValidationError を期待: %v", err)
	}
}

func TestUserService_Create_DepartmentNotFound(t *testing.T) {
	svc, _, _ := setupUserService()

	req := validCreateUserRequest(domain.NewDepartmentID().String())

	_, err := svc.Create(context.Background(), req)
	derr, ok := domain.AsDomainError(err)
	if !ok || derr.Kind != domain.KindNotFound {
		t.Fatalf("NotFound を期待: %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, _, deptRepo := setupUserService()
	deptID := addTestDepartment(deptRepo)

	if _, err := svc.Create(context.Background(), validCreateUserRequest(deptID)); err != nil {
		t.Fatalf("1 人目の作成に失敗: %v", err)
	}

	req := validCreateUserRequest(deptID)
	req.Name = "別の太郎"
	_, err := svc.Create(context.Background(), req)
	derr, ok := domain.AsDomainError(err)
	if !ok || derr.Code != domain.CodeUserAlreadyExists {
		t.Fatalf("USER_ALREADY_EXISTS を期待: %v", err)
	}
}

// ── Update ──

func TestUserService_Update_PartialMerge(t *testing.T) {
	svc, _, deptRepo := setupUserService()
	deptID := addTestDepartment(deptRepo)

	created, err := svc.Create(context.Background(), validCreateUserRequest(deptID))
	if err != nil {
		t.Fatalf("作成に失敗: %v", err)
	}

	newName := "山田次郎"
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateUserRequest{Name: &newName})
	if err != nil {
		t.Fatalf("更新に失敗: %v", err)
	}
	if resp.Name != newName {
		t.Errorf("Name = %q", resp.Name)
	}
	if resp.Email != created.Email {
		t.Errorf("Email が変わってしまった: %q", resp.Email)
	}
}

func TestUserService_Update_InvalidID(t *testing.T) {
	svc, _, _ := setupUserService()

	_, err := svc.Update(context.Background(), "bad-id", &dto.UpdateUserRequest{})
	derr, ok := domain.AsDomainError(err)
	if !ok || derr.Kind != domain.KindValidationError {
		t.Fatalf("ValidationError を期待: %v", err)
	}
}

// ── List ──

func TestUserService_List_FilterByRole(t *testing.T) {
	svc, userRepo, _ := setupUserService()
	addTestUser(userRepo, domain.RoleEmployee)
	addTestUser(userRepo, domain.RoleManager)

	resp, err := svc.List(context.Background(), &dto.UserListRequest{Role: "manager"})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, want 1", resp.Total)
	}
}
