package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  int64           `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PromotionID int64           `gorm:"not null;index" json:"promotion_id"`
	Promotion   *Promotion      `gorm:"foreignKey:PromotionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	OrderDate   time.Time       `gorm:"type:date;not null" json:"order_date"`
	Status      string          `gorm:"type:varchar(50);not null" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping_fee"`
}

func (Order) TableName() string { return "order" }

// 注文明細。(order_id, product_id) が主キー
type OrderItem struct {
	OrderID   int64           `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	Order     *Order          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ProductID int64           `gorm:"primaryKey;autoIncrement:false;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }
