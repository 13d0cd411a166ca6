package domain

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// 識別子は ULID（26文字・Crockford Base32・時刻順ソート可能）。
// 種類ごとに別型とし、取り違えをコンパイル時に防ぐ。

type (
	UserID         string
	DailyReportID  string
	DepartmentID   string
	ProjectID      string
	TaskID         string
	NotificationID string
)

func (id UserID) String() string         { return string(id) }
func (id DailyReportID) String() string  { return string(id) }
func (id DepartmentID) String() string   { return string(id) }
func (id ProjectID) String() string      { return string(id) }
func (id TaskID) String() string         { return string(id) }
func (id NotificationID) String() string { return string(id) }

// newULID は現在時刻ベースの ULID を生成する。
func newULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// parseULID は 26 文字の ULID 形式かを検証する。
func parseULID(s string) error {
	if _, err := ulid.ParseStrict(s); err != nil {
		return fmt.Errorf("不正な識別子 %q: %w", s, err)
	}
	return nil
}

// NewUserID は新しい UserID を採番する。
func NewUserID() UserID { return UserID(newULID()) }

// NewDailyReportID は新しい DailyReportID を採番する。
func NewDailyReportID() DailyReportID { return DailyReportID(newULID()) }

// NewDepartmentID は新しい DepartmentID を採番する。
func NewDepartmentID() DepartmentID { return DepartmentID(newULID()) }

// NewProjectID は新しい ProjectID を採番する。
func NewProjectID() ProjectID { return ProjectID(newULID()) }

// NewTaskID は新しい TaskID を採番する。
func NewTaskID() TaskID { return TaskID(newULID()) }

// NewNotificationID は新しい NotificationID を採番する。
func NewNotificationID() NotificationID { return NotificationID(newULID()) }

// ParseUserID は文字列を検証して UserID に変換する。
func ParseUserID(s string) (UserID, error) {
	if err := parseULID(s); err != nil {
		return "", err
	}
	return UserID(s), nil
}

// ParseDailyReportID は文字列を検証して DailyReportID に変換する。
func ParseDailyReportID(s string) (DailyReportID, error) {
	if err := parseULID(s); err != nil {
		return "", err
	}
	return DailyReportID(s), nil
}

// ParseDepartmentID は文字列を検証して DepartmentID に変換する。
func ParseDepartmentID(s string) (DepartmentID, error) {
	if err := parseULID(s); err != nil {
		return "", err
	}
	return DepartmentID(s), nil
}

// ParseProjectID は文字列を検証して ProjectID に変換する。
func ParseProjectID(s string) (ProjectID, error) {
	if err := parseULID(s); err != nil {
		return "", err
	}
	return ProjectID(s), nil
}
