package repository

import (
	"context"
	"errors"

	"shopdb/internal/domain/model"
	repo "shopdb/internal/repository"

	"gorm.io/gorm"
)

// 親子関係は外部キーでその都度引く
type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ProductsByAdmin(ctx context.Context, adminID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Order("id asc").Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *CatalogGormRepository) OrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id asc").Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *CatalogGormRepository) FindOrder(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *CatalogGormRepository) OrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("product_id asc").Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

func (r *CatalogGormRepository) PaymentByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogGormRepository) ShippingsByOrder(ctx context.Context, orderID int64) ([]model.Shipping, error) {
	var shippings []model.Shipping
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&shippings).Error
	if err != nil {
		return []model.Shipping{}, err
	}
	return shippings, nil
}

func (r *CatalogGormRepository) CartByCustomer(ctx context.Context, customerID int64) (model.Shoppingcart, error) {
	var c model.Shoppingcart
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shoppingcart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shoppingcart{}, err
	}
	return c, nil
}

func (r *CatalogGormRepository) CartItems(ctx context.Context, cartID int64) ([]model.ShoppingcartItem, error) {
	var items []model.ShoppingcartItem
	err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Order("product_id asc").Find(&items).Error
	if err != nil {
		return []model.ShoppingcartItem{}, err
	}
	return items, nil
}

func (r *CatalogGormRepository) WishlistsByCustomer(ctx context.Context, customerID int64) ([]model.Wishlist, error) {
	var lists []model.Wishlist
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id asc").Find(&lists).Error
	if err != nil {
		return []model.Wishlist{}, err
	}
	return lists, nil
}

// 中間テーブル wishlist_items をJOIN
func (r *CatalogGormRepository) WishlistProducts(ctx context.Context, wishlistID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN wishlist_items ON wishlist_items.product_id = product.id").
		Where("wishlist_items.wishlist_id = ?", wishlistID).
		Order("product.id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 中間テーブル promotionproduct をJOIN
func (r *CatalogGormRepository) PromotionsByProduct(ctx context.Context, productID int64) ([]model.Promotion, error) {
	var promotions []model.Promotion
	err := r.db.WithContext(ctx).
		Joins("JOIN promotionproduct ON promotionproduct.promotion_id = promotion.id").
		Where("promotionproduct.product_id = ?", productID).
		Order("promotion.id asc").
		Find(&promotions).Error
	if err != nil {
		return []model.Promotion{}, err
	}
	return promotions, nil
}
