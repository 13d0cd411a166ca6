package domain

import (
	"regexp"
	"strings"
)

// MaxDailyHours は 1 日の作業時間合計の上限。
const MaxDailyHours = 24

// emailPattern は local@domain.tld 形式を要求する。
// 空白・「@」欠落・ドメインのドット欠落を拒否する。
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
	// 記号要件はポリシーで切り替え可能（既定では要求しない）
	specialPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordPolicy はパスワード強度の方針。
// RequireSpecial を有効にすると記号 1 文字以上を追加で要求する。
type PasswordPolicy struct {
	RequireSpecial bool
}

// ValidateTasks は日報のタスク一覧の不変条件を検証する。
//   - 1 件以上あること
//   - 作業時間の合計が 24 時間以下であること
//   - 各タスクの進捗率が 0〜100 であること
//
// 違反がなければ nil を返す。
func ValidateTasks(tasks []Task) *Error {
	if len(tasks) == 0 {
		return ValidationError("少なくとも1つのタスクを入力してください")
	}

	var totalHours float64
	for _, task := range tasks {
		totalHours += task.HoursSpent
	}
	if totalHours > MaxDailyHours {
		return ValidationError("1日の作業時間は24時間を超えることはできません").
			WithCode(CodeInvalidTaskHours)
	}

	for _, task := range tasks {
		if task.Progress < 0 || task.Progress > 100 {
			return ValidationError("進捗率は0〜100の範囲で入力してください").
				WithCode(CodeInvalidProgressValue)
		}
	}

	return nil
}

// ValidateEmail はメールアドレスの形式を検証する。
func ValidateEmail(email string) *Error {
	if !emailPattern.MatchString(email) {
		return ValidationError("有効なメールアドレスを入力してください").
			WithCode(CodeInvalidEmail)
	}
	return nil
}

// ValidatePassword はパスワード強度を検証する。
// 8 文字以上・大文字・小文字・数字を必須とし、policy により記号を追加要求する。
func ValidatePassword(password string, policy PasswordPolicy) *Error {
	if len(password) < 8 {
		return ValidationError("パスワードは8文字以上である必要があります").
			WithCode(CodeWeakPassword)
	}
	if !upperPattern.MatchString(password) {
		return ValidationError("パスワードには少なくとも1つの大文字を含める必要があります").
			WithCode(CodeWeakPassword)
	}
	if !lowerPattern.MatchString(password) {
		return ValidationError("パスワードには少なくとも1つの小文字を含める必要があります").
			WithCode(CodeWeakPassword)
	}
	if !digitPattern.MatchString(password) {
		return ValidationError("パスワードには少なくとも1つの数字を含める必要があります").
			WithCode(CodeWeakPassword)
	}
	if policy.RequireSpecial && !specialPattern.MatchString(password) {
		return ValidationError("パスワードには少なくとも1つの記号を含める必要があります").
			WithCode(CodeWeakPassword)
	}
	return nil
}

// ValidateFeedback は差し戻し理由が空白のみでないことを検証する。
func ValidateFeedback(feedback string) *Error {
	if strings.TrimSpace(feedback) == "" {
		return ValidationError("差し戻し理由を入力してください")
	}
	return nil
}
