package domain

import (
	"context"
	"time"
)

// ワークフローが依存する永続化ポート。実装は internal/repository が提供する。
// 各メソッドは対象が存在しない場合 (nil, nil) を返し、インフラ障害のみ
// error を返す。ストア側の一意制約違反は ErrConflict として返すこと。

// DailyReportRepository は日報の永続化ポート。
type DailyReportRepository interface {
	FindByID(ctx context.Context, id DailyReportID) (*DailyReport, error)
	FindByUserAndDate(ctx context.Context, userID UserID, date time.Time) (*DailyReport, error)
	Create(ctx context.Context, report *DailyReport) (*DailyReport, error)
	// Update はタスク一覧を全削除→再作成で置き換える。
	// この置換は単一トランザクションで行うこと（途中失敗でタスクが
	// 消失してはならない）。
	Update(ctx context.Context, report *DailyReport) (*DailyReport, error)
}

// ApproverRepository は承認権限判定用の軽量ユーザー参照ポート。
type ApproverRepository interface {
	FindApprover(ctx context.Context, id UserID) (*Approver, error)
}

// UserRepository はユーザーの永続化ポート。
type UserRepository interface {
	FindByID(ctx context.Context, id UserID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
}

// PasswordHasher はパスワードのハッシュ化・照合ポート。
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// TokenGenerator は認証トークン対の発行ポート。
type TokenGenerator interface {
	Generate(userID UserID, role UserRole) (*AuthToken, error)
}
