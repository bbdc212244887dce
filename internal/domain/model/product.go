package model

import "github.com/shopspring/decimal"

// 商品。登録した管理者に属する
type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID       int64           `gorm:"not null;index" json:"admin_id"`
	Admin         *Admin          `gorm:"foreignKey:AdminID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category      string          `gorm:"type:varchar(100);not null" json:"category"`
	StockQuantity int64           `gorm:"not null" json:"stock_quantity"`
	Description   *string         `gorm:"type:varchar(400)" json:"description"`
}

func (Product) TableName() string { return "product" }
