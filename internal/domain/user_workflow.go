package domain

import (
	"context"
	"errors"
	"time"

	"github.com/sutefu23/report/pkg/either"
)

// UserResult / AuthResult はユーザーワークフローの戻り値型。
type (
	UserResult = either.Either[*Error, *User]
	AuthResult = either.Either[*Error, *AuthToken]
)

// UserWorkflow はユーザー登録・更新・認証のユースケースを実装する。
// DailyReportWorkflow と同様にポート注入・無状態。
type UserWorkflow struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenGenerator
	policy PasswordPolicy
}

// NewUserWorkflow は UserWorkflow を生成する。
func NewUserWorkflow(users UserRepository, hasher PasswordHasher, tokens TokenGenerator, policy PasswordPolicy) *UserWorkflow {
	return &UserWorkflow{users: users, hasher: hasher, tokens: tokens, policy: policy}
}

func userLeft(e *Error) UserResult  { return either.Left[*Error, *User](e) }
func userRight(u *User) UserResult  { return either.Right[*Error, *User](u) }
func authLeft(e *Error) AuthResult  { return either.Left[*Error, *AuthToken](e) }
func authRight(t *AuthToken) AuthResult { return either.Right[*Error, *AuthToken](t) }

// Create はユーザーを登録する。
// メール形式・パスワード強度を検証し、メールの一意性を確認した上で
// パスワードをハッシュ化して保存する。ハッシュは呼び出し側へ返さない。
func (w *UserWorkflow) Create(ctx context.Context, input CreateUserInput) (UserResult, error) {
	if verr := ValidateEmail(input.Email); verr != nil {
		return userLeft(verr), nil
	}
	if verr := ValidatePassword(input.Password, w.policy); verr != nil {
		return userLeft(verr), nil
	}

	existing, err := w.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return UserResult{}, err
	}
	if existing != nil {
		return userLeft(AlreadyExists("このメールアドレスは既に使用されています").
			WithCode(CodeUserAlreadyExists)), nil
	}

	hash, err := w.hasher.Hash(ctx, input.Password)
	if err != nil {
		return UserResult{}, err
	}

	now := time.Now()
	user := &User{
		ID:           NewUserID(),
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := w.users.Create(ctx, user)
	if err != nil {
		// メール一意制約はストア側が最終防衛線
		if errors.Is(err, ErrConflict) {
			return userLeft(AlreadyExists("このメールアドレスは既に使用されています").
				WithCode(CodeUserAlreadyExists)), nil
		}
		return UserResult{}, err
	}

	created.PasswordHash = ""
	return userRight(created), nil
}

// Update はユーザーの属性を部分更新する。nil のフィールドは据え置き。
func (w *UserWorkflow) Update(ctx context.Context, input UpdateUserInput) (UserResult, error) {
	user, err := w.users.FindByID(ctx, input.ID)
	if err != nil {
		return UserResult{}, err
	}
	if user == nil {
		return userLeft(NotFound("ユーザーが見つかりません")), nil
	}

	updated := *user
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Role != nil {
		updated.Role = *input.Role
	}
	if input.DepartmentID != nil {
		updated.DepartmentID = *input.DepartmentID
	}
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}
	updated.UpdatedAt = time.Now()

	result, err := w.users.Update(ctx, &updated)
	if err != nil {
		return UserResult{}, err
	}
	return userRight(result), nil
}

// Authenticate はメールアドレスとパスワードで認証し、トークン対を発行する。
// 失敗理由（ユーザー不存在・無効化・パスワード不一致）は攻撃者への
// アカウント列挙を防ぐため、いずれも同一の文言で返す。
func (w *UserWorkflow) Authenticate(ctx context.Context, input AuthenticateUserInput) (AuthResult, error) {
	const genericMessage = "メールアドレスまたはパスワードが正しくありません"

	user, err := w.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return AuthResult{}, err
	}
	if user == nil || !user.IsActive || user.PasswordHash == "" {
		return authLeft(Unauthorized(genericMessage)), nil
	}

	ok, err := w.hasher.Verify(ctx, input.Password, user.PasswordHash)
	if err != nil {
		return AuthResult{}, err
	}
	if !ok {
		return authLeft(Unauthorized(genericMessage)), nil
	}

	token, err := w.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return AuthResult{}, err
	}
	return authRight(token), nil
}
