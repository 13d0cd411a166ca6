package repository

import "gorm.io/gorm"

// Repository 全 Repository の集約
type Repository struct {
	DailyReport DailyReportRepository
	User        UserRepository
	Department  DepartmentRepository
	Project     ProjectRepository
	Statistics  StatisticsRepository
}

// NewRepository Repository 集約を生成する
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DailyReport: NewDailyReportRepo(db),
		User:        NewUserRepo(db),
		Department:  NewDepartmentRepo(db),
		Project:     NewProjectRepo(db),
		Statistics:  NewStatisticsRepo(db),
	}
}
