package model

// 顧客。注文・カート・ウィッシュリストは customer_id で引く
type Customer struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"type:varchar(50);not null" json:"name"`
	Email    string  `gorm:"type:varchar(50);not null;uniqueIndex" json:"email"`
	Password string  `gorm:"type:varchar(100);not null" json:"-"`
	Address  *string `gorm:"type:varchar(400)" json:"address"`
}

func (Customer) TableName() string { return "customer" }
