package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sutefu23/report/config"
	"github.com/sutefu23/report/internal/api/handler"
	"github.com/sutefu23/report/internal/api/middleware"
	"github.com/sutefu23/report/pkg/jwt"
	"github.com/sutefu23/report/pkg/redis"
)

// Setup Gin ルータを初期化して返す
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── グローバルミドルウェア ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── ヘルスチェック ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 認証（未ログインでアクセス可）。ログインは総当たり対策で制限を強めに
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", middleware.RateLimit(rdb, 30, time.Minute), h.Auth.Refresh)
		}

		// 要認証ルート
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// ユーザー
			users := authorized.Group("/users")
			{
				users.POST("", middleware.RoleAuth("admin"), h.User.Create)
				users.GET("", middleware.RoleAuth("admin", "manager"), h.User.List)
				users.GET("/:id", middleware.RoleAuth("admin", "manager"), h.User.Get)
				users.PATCH("/:id", middleware.RoleAuth("admin"), h.User.Update)
			}

			// 日報
			reports := authorized.Group("/daily-reports")
			{
				reports.POST("", h.DailyReport.Create)
				reports.GET("", h.DailyReport.List)
				reports.GET("/export", h.Export.Monthly)
				reports.GET("/:id", h.DailyReport.Get)
				reports.PATCH("/:id", h.DailyReport.Update)
				reports.POST("/:id/submit", h.DailyReport.Submit)
				reports.POST("/:id/approve", middleware.RoleAuth("admin", "manager"), h.DailyReport.Approve)
				reports.POST("/:id/reject", middleware.RoleAuth("admin", "manager"), h.DailyReport.Reject)
			}

			// 統計
			statistics := authorized.Group("/statistics")
			{
				statistics.GET("/personal", h.Statistics.Personal)
				statistics.GET("/team/:departmentId", middleware.RoleAuth("admin", "manager"), h.Statistics.Team)
			}
		}
	}

	return r
}
