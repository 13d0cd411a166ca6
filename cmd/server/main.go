package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sutefu23/report/config"
	"github.com/sutefu23/report/internal/api/handler"
	"github.com/sutefu23/report/internal/api/router"
	"github.com/sutefu23/report/internal/repository"
	"github.com/sutefu23/report/internal/service"
	"github.com/sutefu23/report/pkg/database"
	"github.com/sutefu23/report/pkg/jwt"
	applogger "github.com/sutefu23/report/pkg/logger"
	"github.com/sutefu23/report/pkg/redis"
)

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定の読み込みに失敗: %v\n", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ロガーの初期化に失敗: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("アプリケーション起動中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("logLevel", cfg.Log.Level),
	)

	// 3. データベース接続とマイグレーション
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

	// 4. Redis 接続（失敗時はブラックリスト・レート制限なしで継続）
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 接続に失敗。トークン失効とレート制限は無効になります", zap.Error(err))
		rdb = nil
	}

	// 5. JWT マネージャ
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 依存注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. ルータ
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. HTTP サーバー起動（グレースフルシャットダウン対応）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP サーバーを起動しました", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP サーバーが異常終了", zap.Error(err))
		}
	}()

	// 9. シグナル待機とグレースフルシャットダウン
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("終了シグナルを受信。シャットダウンを開始します", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("サーバーの停止に失敗", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("サーバーを停止しました")
}
