package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/repository"
)

// UserService ユーザーのユースケース窓口
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context, req *dto.UserListRequest) (*dto.PageResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	workflow *domain.UserWorkflow
	repo     *repository.Repository
	logger   *zap.Logger
}

// NewUserService UserService を生成する
func NewUserService(workflow *domain.UserWorkflow, repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{workflow: workflow, repo: repo, logger: logger}
}

func parseUserID(s string) (domain.UserID, *domain.Error) {
	id, err := domain.ParseUserID(s)
	if err != nil {
		return "", domain.ValidationError("ユーザー ID の形式が正しくありません")
	}
	return id, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, domain.ValidationError("役割は admin / manager / employee のいずれかを指定してください")
	}

	// 部門の存在確認はワークフローの外側で行う
	dept, err := s.repo.Department.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.NotFound("部門が見つかりません")
	}

	result, err := s.workflow.Create(ctx, domain.CreateUserInput{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		Role:         role,
		DepartmentID: domain.DepartmentID(req.DepartmentID),
	})
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}

	user := result.Right()
	s.logger.Info("ユーザーを登録しました",
		zap.String("userId", user.ID.String()),
		zap.String("role", string(user.Role)),
	)
	return toUserResponse(user), nil
}

func (s *userService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	userID, derr := parseUserID(id)
	if derr != nil {
		return nil, derr
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("ユーザーが見つかりません")
	}
	return toUserResponse(user), nil
}

func (s *userService) List(ctx context.Context, req *dto.UserListRequest) (*dto.PageResponse, error) {
	users, total, err := s.repo.User.List(ctx, repository.UserFilter{
		DepartmentID: req.DepartmentID,
		Role:         req.Role,
		Offset:       req.Offset(),
		Limit:        req.GetPageSize(),
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *toUserResponse(&users[i]))
	}
	return &dto.PageResponse{
		Items:    items,
		Total:    total,
		Page:     req.GetPage(),
		PageSize: req.GetPageSize(),
	}, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	userID, derr := parseUserID(id)
	if derr != nil {
		return nil, derr
	}

	input := domain.UpdateUserInput{
		ID:       userID,
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.Valid() {
			return nil, domain.ValidationError("役割は admin / manager / employee のいずれかを指定してください")
		}
		input.Role = &role
	}
	if req.DepartmentID != nil {
		dept, err := s.repo.Department.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, domain.NotFound("部門が見つかりません")
		}
		deptID := domain.DepartmentID(*req.DepartmentID)
		input.DepartmentID = &deptID
	}

	result, err := s.workflow.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}
	return toUserResponse(result.Right()), nil
}

// ── dto 変換 ──

func toUserResponse(u *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		DepartmentID: u.DepartmentID.String(),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
