package model

// AutoMigrate に渡す全モデル。親テーブルが先
func All() []any {
	return []any{
		&Admin{},
		&Customer{},
		&Promotion{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Shoppingcart{},
		&ShoppingcartItem{},
		&Wishlist{},
		&WishlistItem{},
		&Promotionproduct{},
		&Payment{},
		&Shipping{},
	}
}
