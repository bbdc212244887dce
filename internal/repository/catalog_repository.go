package repository

import (
	"context"

	"shopdb/internal/domain/model"
)

// 親から子を外部キーで引く読み取り専用の窓口
type CatalogRepository interface {
	ProductsByAdmin(ctx context.Context, adminID int64) ([]model.Product, error)
	OrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	FindOrder(ctx context.Context, orderID int64) (model.Order, error)
	OrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// 1注文に支払いは最大1件。なければ nil
	PaymentByOrder(ctx context.Context, orderID int64) (*model.Payment, error)
	ShippingsByOrder(ctx context.Context, orderID int64) ([]model.Shipping, error)

	// 1顧客にカートは最大1つ。なければ ErrNotFound
	CartByCustomer(ctx context.Context, customerID int64) (model.Shoppingcart, error)
	CartItems(ctx context.Context, cartID int64) ([]model.ShoppingcartItem, error)

	WishlistsByCustomer(ctx context.Context, customerID int64) ([]model.Wishlist, error)
	// wishlist_items 経由
	WishlistProducts(ctx context.Context, wishlistID int64) ([]model.Product, error)
	// promotionproduct 経由
	PromotionsByProduct(ctx context.Context, productID int64) ([]model.Promotion, error)
}
