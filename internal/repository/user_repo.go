package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/model"
)

// UserFilter ユーザー一覧の検索条件
type UserFilter struct {
	DepartmentID string
	Role         string
	Offset       int
	Limit        int
}

// UserRepository ユーザーデータアクセスインターフェース。
// ワークフローのポートに加え、承認者参照と一覧取得を提供する。
type UserRepository interface {
	domain.UserRepository
	domain.ApproverRepository
	List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
}

// userRepo UserRepository の GORM 実装
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo UserRepository を生成する
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).Where("id = ?", string(id)).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(&m), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(&m), nil
}

func (r *userRepo) FindApprover(ctx context.Context, id domain.UserID) (*domain.Approver, error) {
	var m model.User
	err := r.db.WithContext(ctx).
		Select("id", "role").
		Where("id = ? AND is_active = true", string(id)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Approver{ID: domain.UserID(m.ID), Role: domain.UserRole(m.Role)}, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := toModelUser(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := toModelUser(user)
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"name":          m.Name,
			"role":          m.Role,
			"department_id": m.DepartmentID,
			"is_active":     m.IsActive,
			"updated_at":    m.UpdatedAt,
		}).Error
	if err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *userRepo) List(ctx context.Context, filter UserFilter) ([]domain.User, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.User{})

	if filter.DepartmentID != "" {
		db = db.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []model.User
	if err := db.Offset(filter.Offset).Limit(filter.Limit).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, *toDomainUser(&models[i]))
	}
	return users, total, nil
}

// ── model ↔ domain 変換 ──

func toModelUser(d *domain.User) *model.User {
	m := &model.User{
		ID:           string(d.ID),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Role:         string(d.Role),
		DepartmentID: string(d.DepartmentID),
		IsActive:     d.IsActive,
	}
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt
	return m
}

func toDomainUser(m *model.User) *domain.User {
	return &domain.User{
		ID:           domain.UserID(m.ID),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		DepartmentID: domain.DepartmentID(m.DepartmentID),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
