package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sutefu23/report/internal/model"
)

// ProjectRepository プロジェクトデータアクセスインターフェース
type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, project *model.Project) error
}

// projectRepo ProjectRepository の GORM 実装
type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo ProjectRepository を生成する
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}
