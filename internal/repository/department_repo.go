package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sutefu23/report/internal/model"
)

// DepartmentRepository 部門データアクセスインターフェース
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Create(ctx context.Context, dept *model.Department) error
}

// departmentRepo DepartmentRepository の GORM 実装
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo DepartmentRepository を生成する
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) GetByID(ctx context.Context, id string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dept).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("name ASC").
		Find(&depts).Error
	if err != nil {
		return nil, err
	}
	return depts, nil
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}
