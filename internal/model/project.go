package model

// Project プロジェクトテーブル — projects
type Project struct {
	ID       string `gorm:"type:char(26);primaryKey"   json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true"      json:"isActive"`
	BaseModel
}

// TableName テーブル名を指定する
func (Project) TableName() string { return "projects" }
