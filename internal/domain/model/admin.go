package model

// 管理者のロール。DBにはそのまま文字列で入る
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

// 管理者アカウント。emailはテーブル内で一意
type Admin struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(50);not null" json:"name"`
	Email    string `gorm:"type:varchar(50);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Role     Role   `gorm:"type:varchar(50);not null" json:"role"`
}

func (Admin) TableName() string { return "admin" }
