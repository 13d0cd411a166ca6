package domain

import "errors"

// ErrorKind は業務エラーの分類（閉じた集合）。
type ErrorKind string

const (
	KindNotFound              ErrorKind = "NOT_FOUND"
	KindAlreadyExists         ErrorKind = "ALREADY_EXISTS"
	KindValidationError       ErrorKind = "VALIDATION_ERROR"
	KindUnauthorized          ErrorKind = "UNAUTHORIZED"
	KindForbidden             ErrorKind = "FORBIDDEN"
	KindBusinessRuleViolation ErrorKind = "BUSINESS_RULE_VIOLATION"
)

// ErrorCode はワークフロー層が付与する詳細コード。
// API クライアントはこのコードで失敗理由を機械判別する。
type ErrorCode string

const (
	CodeDailyReportNotFound      ErrorCode = "DAILY_REPORT_NOT_FOUND"
	CodeDailyReportAlreadyExists ErrorCode = "DAILY_REPORT_ALREADY_EXISTS"
	CodeInvalidTaskHours         ErrorCode = "INVALID_TASK_HOURS"
	CodeInvalidProgressValue     ErrorCode = "INVALID_PROGRESS_VALUE"
	CodeInvalidStatusTransition  ErrorCode = "INVALID_STATUS_TRANSITION"
	CodeUnauthorized             ErrorCode = "UNAUTHORIZED"
	CodeForbidden                ErrorCode = "FORBIDDEN"
	CodeUserAlreadyExists        ErrorCode = "USER_ALREADY_EXISTS"
	CodeInvalidEmail             ErrorCode = "INVALID_EMAIL"
	CodeWeakPassword             ErrorCode = "WEAK_PASSWORD"
	CodeValidationError          ErrorCode = "VALIDATION_ERROR"
)

// Error は業務エラー。メッセージは利用者向けの日本語文言を保持する。
// ワークフローはこの型を Either の Left として返し、決して panic しない。
// どの Kind も自動リトライ対象ではない。
type Error struct {
	Kind    ErrorKind
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error は error インターフェースを満たす。
func (e *Error) Error() string { return e.Message }

// WithCode は詳細コードを付与した新しいエラーを返す。
func (e *Error) WithCode(code ErrorCode) *Error {
	clone := *e
	clone.Code = code
	return &clone
}

// WithDetails は構造化された補足情報を付与した新しいエラーを返す。
func (e *Error) WithDetails(details map[string]any) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// ── コンストラクタ ──

// NotFound は対象が存在しないことを表すエラーを生成する。
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// AlreadyExists は一意制約に反する重複を表すエラーを生成する。
func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// ValidationError は入力検証の失敗を表すエラーを生成する。
func ValidationError(message string) *Error {
	return &Error{Kind: KindValidationError, Code: CodeValidationError, Message: message}
}

// Unauthorized は認証失敗を表すエラーを生成する。
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden は権限不足を表すエラーを生成する。
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Code: CodeForbidden, Message: message}
}

// BusinessRuleViolation は業務ルール違反を表すエラーを生成する。
func BusinessRuleViolation(message string) *Error {
	return &Error{Kind: KindBusinessRuleViolation, Message: message}
}

// AsDomainError は err が業務エラーであれば取り出す。
// インフラ障害（DB 接続エラー等）は業務エラーではないため false を返す。
func AsDomainError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ErrConflict は永続化層の一意制約違反を示すセンチネル。
// find-then-create の事前チェックは競合時の早期リターンに過ぎず、
// 実際の保証はストア側の一意制約が担う。リポジトリ実装は重複キー
// エラーをこのセンチネルへ変換して返すこと。
var ErrConflict = errors.New("一意制約に違反しました")
