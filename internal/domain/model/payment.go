package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 支払い。1注文につき1件まで
type Payment struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64           `gorm:"not null;uniqueIndex" json:"order_id"`
	Order         *Order          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"type:varchar(100);not null" json:"payment_method"`
	Status        string          `gorm:"type:varchar(50);not null" json:"status"`
	PaymentDate   time.Time       `gorm:"type:date;not null" json:"payment_date"`
}

func (Payment) TableName() string { return "payment" }

type Shipping struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64           `gorm:"not null;index" json:"order_id"`
	Order           *Order          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ShippingAddress string          `gorm:"type:varchar(100);not null" json:"shipping_address"`
	ShippingFee     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping_fee"`
	ShippingStatus  string          `gorm:"type:varchar(50);not null" json:"shipping_status"`
}

func (Shipping) TableName() string { return "shipping" }
