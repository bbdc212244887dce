package model

type Wishlist struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Wishlist) TableName() string { return "wishlist" }

// ウィッシュリストと商品の多対多の中間テーブル
type WishlistItem struct {
	WishlistID int64     `gorm:"primaryKey;autoIncrement:false" json:"wishlist_id"`
	Wishlist   *Wishlist `gorm:"foreignKey:WishlistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ProductID  int64     `gorm:"primaryKey;autoIncrement:false;index" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
