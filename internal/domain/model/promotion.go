package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// プロモーション。codeは一意
type Promotion struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          int64           `gorm:"not null;uniqueIndex" json:"code"`
	Description   string          `gorm:"type:varchar(400);not null" json:"description"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	StartDate     time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time       `gorm:"type:date;not null" json:"end_date"`
}

func (Promotion) TableName() string { return "promotion" }

// プロモーションと商品の紐付け
type Promotionproduct struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PromotionID int64      `gorm:"not null;index" json:"promotion_id"`
	Promotion   *Promotion `gorm:"foreignKey:PromotionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ProductID   int64      `gorm:"not null;index" json:"product_id"`
	Product     *Product   `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Promotionproduct) TableName() string { return "promotionproduct" }
