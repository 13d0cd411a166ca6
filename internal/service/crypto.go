package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/pkg/jwt"
)

// bcryptHasher bcrypt によるパスワードハッシュ実装
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher bcrypt ベースの PasswordHasher を生成する
func NewBcryptHasher() domain.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h *bcryptHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// jwtTokenGenerator jwt.Manager を TokenGenerator ポートへ適合させる
type jwtTokenGenerator struct {
	manager *jwt.Manager
}

// NewTokenGenerator JWT ベースの TokenGenerator を生成する
func NewTokenGenerator(manager *jwt.Manager) domain.TokenGenerator {
	return &jwtTokenGenerator{manager: manager}
}

func (g *jwtTokenGenerator) Generate(userID domain.UserID, role domain.UserRole) (*domain.AuthToken, error) {
	pair, err := g.manager.GeneratePair(userID.String(), string(role))
	if err != nil {
		return nil, err
	}
	return &domain.AuthToken{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
