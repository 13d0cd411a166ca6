package domain

import "time"

// UserRole はユーザーの役割。承認権限の判定に使う。
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// Valid は定義済みの役割かを返す。
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanApprove は日報の承認・差し戻し権限を持つ役割かを返す。
func (r UserRole) CanApprove() bool {
	return r == RoleManager || r == RoleAdmin
}

// User はユーザーエンティティ。
// PasswordHash は認証経路でのみロードされ、空文字は未ロードを意味する。
type User struct {
	ID           UserID
	Email        string
	PasswordHash string
	Name         string
	Role         UserRole
	DepartmentID DepartmentID
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Approver は承認権限判定に必要な最小限のユーザー像。
type Approver struct {
	ID   UserID
	Role UserRole
}

// AuthToken は認証成功時に発行されるトークン対。
type AuthToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // Access Token の有効期間（秒）
}

// ── 入力 ──

// CreateUserInput はユーザー登録の入力。
type CreateUserInput struct {
	Email        string
	Name         string
	Password     string
	Role         UserRole
	DepartmentID DepartmentID
}

// UpdateUserInput はユーザー更新の入力。nil のフィールドは変更しない。
type UpdateUserInput struct {
	ID           UserID
	Name         *string
	Role         *UserRole
	DepartmentID *DepartmentID
	IsActive     *bool
}

// AuthenticateUserInput は認証の入力。
type AuthenticateUserInput struct {
	Email    string
	Password string
}
