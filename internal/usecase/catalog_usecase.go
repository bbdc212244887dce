package usecase

import (
	"context"
	"errors"
	"net/http"

	"shopdb/internal/domain/model"
	repo "shopdb/internal/repository"
)

// 管理画面向けの関連データ参照
type CatalogUsecase struct {
	catalog repo.CatalogRepository
}

// DI
func NewCatalogUsecase(catalog repo.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog}
}

// 注文と、その明細・支払い・配送
type OrderDetail struct {
	Order    model.Order       `json:"order"`
	Items    []model.OrderItem `json:"items"`
	Payment  *model.Payment    `json:"payment"`
	Shipping []model.Shipping  `json:"shipping"`
}

type CartDetail struct {
	Cart  model.Shoppingcart       `json:"cart"`
	Items []model.ShoppingcartItem `json:"items"`
}

func (u *CatalogUsecase) AdminProducts(ctx context.Context, adminID int64) ([]model.Product, error) {
	if adminID <= 0 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid admin id")
	}
	products, err := u.catalog.ProductsByAdmin(ctx, adminID)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *CatalogUsecase) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	if customerID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	orders, err := u.catalog.OrdersByCustomer(ctx, customerID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *CatalogUsecase) OrderDetail(ctx context.Context, orderID int64) (OrderDetail, error) {
	if orderID <= 0 {
		return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.catalog.FindOrder(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderDetail{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.catalog.OrderItems(ctx, orderID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	payment, err := u.catalog.PaymentByOrder(ctx, orderID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	shippings, err := u.catalog.ShippingsByOrder(ctx, orderID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderDetail{
		Order:    o,
		Items:    items,
		Payment:  payment,
		Shipping: shippings,
	}, nil
}

func (u *CatalogUsecase) CustomerCart(ctx context.Context, customerID int64) (CartDetail, error) {
	if customerID <= 0 {
		return CartDetail{}, NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}

	cart, err := u.catalog.CartByCustomer(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartDetail{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.catalog.CartItems(ctx, cart.ID)
	if err != nil {
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CartDetail{Cart: cart, Items: items}, nil
}

func (u *CatalogUsecase) CustomerWishlists(ctx context.Context, customerID int64) ([]model.Wishlist, error) {
	if customerID <= 0 {
		return []model.Wishlist{}, NewHTTPError(http.StatusBadRequest, "invalid customer id")
	}
	lists, err := u.catalog.WishlistsByCustomer(ctx, customerID)
	if err != nil {
		return []model.Wishlist{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return lists, nil
}

func (u *CatalogUsecase) WishlistProducts(ctx context.Context, wishlistID int64) ([]model.Product, error) {
	if wishlistID <= 0 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid wishlist id")
	}
	products, err := u.catalog.WishlistProducts(ctx, wishlistID)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *CatalogUsecase) ProductPromotions(ctx context.Context, productID int64) ([]model.Promotion, error) {
	if productID <= 0 {
		return []model.Promotion{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	promos, err := u.catalog.PromotionsByProduct(ctx, productID)
	if err != nil {
		return []model.Promotion{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return promos, nil
}
