package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/repository"
	"github.com/sutefu23/report/pkg/jwt"
	"github.com/sutefu23/report/pkg/redis"
)

// AuthService 認証のユースケース窓口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	workflow *domain.UserWorkflow
	repo     *repository.Repository
	jwtMgr   *jwt.Manager
	rdb      *redis.Client
	logger   *zap.Logger
}

// NewAuthService AuthService を生成する
func NewAuthService(
	workflow *domain.UserWorkflow,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{workflow: workflow, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	result, err := s.workflow.Authenticate(ctx, domain.AuthenticateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}
	token := result.Right()

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("メールアドレスまたはパスワードが正しくありません")
	}

	s.logger.Info("ログイン成功", zap.String("userId", user.ID.String()))

	return &dto.TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
		User:         *toUserResponse(user),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, domain.Unauthorized("リフレッシュトークンが無効です")
	}
	if claims.TokenType != "refresh" {
		return nil, domain.Unauthorized("リフレッシュトークンが無効です")
	}

	// Redis 未接続（縮退運転）時はブラックリスト照合を行わない
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if blacklisted {
			return nil, domain.Unauthorized("リフレッシュトークンが無効です")
		}
	}

	user, err := s.repo.User.FindByID(ctx, domain.UserID(claims.UserID))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.Unauthorized("リフレッシュトークンが無効です")
	}

	// 旧リフレッシュトークンは使い捨て。残存期間だけブラックリストに入れる
	if s.rdb != nil && claims.ExpiresAt != nil {
		_ = s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}

	pair, err := s.jwtMgr.GeneratePair(user.ID.String(), string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         *toUserResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtMgr.ParseToken(accessToken)
	if err != nil {
		// 既に無効なトークンのログアウトは成功扱い
		return nil
	}
	if s.rdb == nil || claims.ExpiresAt == nil {
		// Redis 未接続時はトークン失効を登録できないため成功扱い
		return nil
	}
	return s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, domain.UserID(userID))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("ユーザーが見つかりません")
	}
	return toUserResponse(user), nil
}
