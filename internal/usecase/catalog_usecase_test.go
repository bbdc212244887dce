package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"shopdb/internal/domain/model"
	repo "shopdb/internal/repository"
	"shopdb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) ProductsByAdmin(ctx context.Context, adminID int64) ([]model.Product, error) {
	args := m.Called(ctx, adminID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) OrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) FindOrder(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *CatalogRepoMock) OrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) PaymentByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	args := m.Called(ctx, orderID)
	p, _ := args.Get(0).(*model.Payment)
	return p, args.Error(1)
}

func (m *CatalogRepoMock) ShippingsByOrder(ctx context.Context, orderID int64) ([]model.Shipping, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.Shipping)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) CartByCustomer(ctx context.Context, customerID int64) (model.Shoppingcart, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(model.Shoppingcart)
	return c, args.Error(1)
}

func (m *CatalogRepoMock) CartItems(ctx context.Context, cartID int64) ([]model.ShoppingcartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.ShoppingcartItem)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) WishlistsByCustomer(ctx context.Context, customerID int64) ([]model.Wishlist, error) {
	args := m.Called(ctx, customerID)
	items, _ := args.Get(0).([]model.Wishlist)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) WishlistProducts(ctx context.Context, wishlistID int64) ([]model.Product, error) {
	args := m.Called(ctx, wishlistID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) PromotionsByProduct(ctx context.Context, productID int64) ([]model.Promotion, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Promotion)
	return items, args.Error(1)
}

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
}

func TestCatalogUsecase_InvalidIDs(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCatalogUsecase(new(CatalogRepoMock))

	_, err := uc.AdminProducts(ctx, 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)
	_, err = uc.CustomerOrders(ctx, -1)
	assertHTTPStatus(t, err, http.StatusBadRequest)
	_, err = uc.OrderDetail(ctx, 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)
	_, err = uc.CustomerCart(ctx, 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)
	_, err = uc.WishlistProducts(ctx, 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)
	_, err = uc.ProductPromotions(ctx, 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCatalogUsecase_OrderDetail(t *testing.T) {
	ctx := context.Background()
	r := new(CatalogRepoMock)
	uc := usecase.NewCatalogUsecase(r)

	r.On("FindOrder", mock.Anything, int64(5)).Return(model.Order{ID: 5, CustomerID: 1, Status: "PAID"}, nil)
	r.On("OrderItems", mock.Anything, int64(5)).Return([]model.OrderItem{{OrderID: 5, ProductID: 10, Quantity: 2}}, nil)
	r.On("PaymentByOrder", mock.Anything, int64(5)).Return(&model.Payment{ID: 1, OrderID: 5, Status: "DONE"}, nil)
	r.On("ShippingsByOrder", mock.Anything, int64(5)).Return([]model.Shipping{}, nil)

	out, err := uc.OrderDetail(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "PAID", out.Order.Status)
	assert.Len(t, out.Items, 1)
	require.NotNil(t, out.Payment)
	assert.Equal(t, "DONE", out.Payment.Status)
	r.AssertExpectations(t)
}

func TestCatalogUsecase_OrderDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	r := new(CatalogRepoMock)
	uc := usecase.NewCatalogUsecase(r)

	r.On("FindOrder", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.OrderDetail(ctx, 9)
	assertHTTPStatus(t, err, http.StatusNotFound)
	r.AssertNotCalled(t, "OrderItems", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_CustomerCart(t *testing.T) {
	ctx := context.Background()
	r := new(CatalogRepoMock)
	uc := usecase.NewCatalogUsecase(r)

	r.On("CartByCustomer", mock.Anything, int64(1)).Return(model.Shoppingcart{ID: 4, CustomerID: 1}, nil)
	r.On("CartItems", mock.Anything, int64(4)).Return([]model.ShoppingcartItem{{CartID: 4, ProductID: 10, Quantity: 1}}, nil)

	out, err := uc.CustomerCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Cart.ID)
	assert.Len(t, out.Items, 1)
}

func TestCatalogUsecase_DBError(t *testing.T) {
	ctx := context.Background()
	r := new(CatalogRepoMock)
	uc := usecase.NewCatalogUsecase(r)

	r.On("ProductsByAdmin", mock.Anything, int64(3)).Return(nil, errors.New("boom"))

	_, err := uc.AdminProducts(ctx, 3)
	assertHTTPStatus(t, err, http.StatusInternalServerError)
}
