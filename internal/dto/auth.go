package dto

// ── 認証 DTO ──

// LoginRequest ログイン要求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest トークン更新要求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse トークンペア応答
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"` // アクセストークン有効期間（秒）
	User         UserResponse `json:"user"`
}
