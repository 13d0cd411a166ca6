package service

import (
	"go.uber.org/zap"

	"github.com/sutefu23/report/config"
	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/notification"
	"github.com/sutefu23/report/internal/repository"
	"github.com/sutefu23/report/pkg/jwt"
	"github.com/sutefu23/report/pkg/redis"
)

// Service 全 Service の集約
type Service struct {
	Auth        AuthService
	User        UserService
	DailyReport DailyReportService
	Statistics  StatisticsService
	Export      ExportService
}

// NewService Service 集約を生成する。
// ワークフローとポート実装の組み立てはここで一括して行う。
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	hasher := NewBcryptHasher()
	tokens := NewTokenGenerator(jwtMgr)
	policy := domain.PasswordPolicy{RequireSpecial: cfg.Auth.PasswordRequireSpecial}

	reportWF := domain.NewDailyReportWorkflow(repo.DailyReport, repo.User)
	userWF := domain.NewUserWorkflow(repo.User, hasher, tokens, policy)
	notifier := notification.NewLogNotifier(logger)

	return &Service{
		Auth:        NewAuthService(userWF, repo, jwtMgr, rdb, logger),
		User:        NewUserService(userWF, repo, logger),
		DailyReport: NewDailyReportService(reportWF, repo, notifier, logger),
		Statistics:  NewStatisticsService(repo, logger),
		Export:      NewExportService(repo, logger),
	}
}
