package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sutefu23/report/config"
)

var (
	ErrTokenExpired = errors.New("トークンの有効期限が切れています")
	ErrTokenInvalid = errors.New("トークンが無効です")
)

// Claims カスタム JWT クレーム
type Claims struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	TokenType string `json:"tokenType"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager JWT の発行・検証を担う
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// TokenPair アクセストークンとリフレッシュトークンの対
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // Access Token の有効期間（秒）
}

// NewManager JWT Manager を生成する
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

func (m *Manager) sign(userID, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "daily-report",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// GeneratePair ユーザー ID と役割を埋め込んだトークン対を発行する
func (m *Manager) GeneratePair(userID, role string) (*TokenPair, error) {
	access, err := m.sign(userID, role, "access", m.accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(userID, role, "refresh", m.refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(m.accessTokenTTL.Seconds()),
	}, nil
}

// ParseToken トークンを解析・検証する
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
