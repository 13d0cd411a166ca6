package model

// User ユーザーテーブル — users
type User struct {
	ID           string `gorm:"type:char(26);primaryKey"                     json:"id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                   json:"-"`
	Name         string `gorm:"type:varchar(100);not null"                   json:"name"`
	Role         string `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	DepartmentID string `gorm:"type:char(26);not null"                       json:"departmentId"`
	IsActive     bool   `gorm:"not null;default:true"                        json:"isActive"`
	BaseModel

	// 関連
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName テーブル名を指定する
func (User) TableName() string { return "users" }
