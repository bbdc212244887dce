package model

import "github.com/shopspring/decimal"

// 1顧客につきカートは1つ
type Shoppingcart struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  int64           `gorm:"not null;uniqueIndex" json:"customer_id"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
}

func (Shoppingcart) TableName() string { return "shoppingcart" }

// カートの明細。(cart_id, product_id) が主キー
type ShoppingcartItem struct {
	CartID    int64         `gorm:"primaryKey;autoIncrement:false" json:"cart_id"`
	Cart      *Shoppingcart `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ProductID int64         `gorm:"primaryKey;autoIncrement:false;index" json:"product_id"`
	Product   *Product      `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity  int64         `gorm:"not null" json:"quantity"`
}

func (ShoppingcartItem) TableName() string { return "shoppingcart_items" }
