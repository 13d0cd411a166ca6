// 開発用の初期データ投入コマンド。
// 部門・プロジェクト・管理者ユーザーを作成する。再実行しても安全
// （既存データがあればスキップ）。
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sutefu23/report/config"
	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/model"
	"github.com/sutefu23/report/internal/repository"
	"github.com/sutefu23/report/internal/service"
	"github.com/sutefu23/report/pkg/database"
	applogger "github.com/sutefu23/report/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定の読み込みに失敗: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ロガーの初期化に失敗: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("データベース接続に失敗", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("内部 sql.DB の取得に失敗", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("マイグレーションに失敗", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ── 部門 ──
	depts, err := repo.Department.List(ctx)
	if err != nil {
		logger.Fatal("部門の取得に失敗", zap.Error(err))
	}
	deptID := ""
	if len(depts) > 0 {
		deptID = depts[0].ID
		logger.Info("部門は既に存在するためスキップ")
	} else {
		for _, name := range []string{"開発部", "営業部", "管理部"} {
			dept := &model.Department{
				ID:       domain.NewDepartmentID().String(),
				Name:     name,
				IsActive: true,
			}
			if err := repo.Department.Create(ctx, dept); err != nil {
				logger.Fatal("部門の作成に失敗", zap.String("name", name), zap.Error(err))
			}
			if deptID == "" {
				deptID = dept.ID
			}
			logger.Info("部門を作成", zap.String("name", name), zap.String("id", dept.ID))
		}
	}

	// ── プロジェクト ──
	projects, err := repo.Project.List(ctx)
	if err != nil {
		logger.Fatal("プロジェクトの取得に失敗", zap.Error(err))
	}
	if len(projects) > 0 {
		logger.Info("プロジェクトは既に存在するためスキップ")
	} else {
		for _, name := range []string{"基幹システム刷新", "社内ツール改善", "顧客ポータル"} {
			project := &model.Project{
				ID:       domain.NewProjectID().String(),
				Name:     name,
				IsActive: true,
			}
			if err := repo.Project.Create(ctx, project); err != nil {
				logger.Fatal("プロジェクトの作成に失敗", zap.String("name", name), zap.Error(err))
			}
			logger.Info("プロジェクトを作成", zap.String("name", name), zap.String("id", project.ID))
		}
	}

	// ── 管理者ユーザー ──
	const adminEmail = "admin@example.com"
	existing, err := repo.User.FindByEmail(ctx, adminEmail)
	if err != nil {
		logger.Fatal("ユーザーの取得に失敗", zap.Error(err))
	}
	if existing != nil {
		logger.Info("管理者ユーザーは既に存在するためスキップ")
	} else {
		hasher := service.NewBcryptHasher()
		hash, err := hasher.Hash(ctx, "Admin1234")
		if err != nil {
			logger.Fatal("パスワードのハッシュ化に失敗", zap.Error(err))
		}
		now := time.Now()
		admin := &domain.User{
			ID:           domain.NewUserID(),
			Email:        adminEmail,
			PasswordHash: hash,
			Name:         "システム管理者",
			Role:         domain.RoleAdmin,
			DepartmentID: domain.DepartmentID(deptID),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := repo.User.Create(ctx, admin); err != nil {
			logger.Fatal("管理者ユーザーの作成に失敗", zap.Error(err))
		}
		logger.Info("管理者ユーザーを作成",
			zap.String("email", adminEmail),
			zap.String("id", admin.ID.String()),
		)
	}

	logger.Info("初期データの投入が完了しました")
}
