package handler

import (
	"context"
	"net/http"

	"shopdb/internal/domain/model"
	"shopdb/internal/usecase"

	"github.com/labstack/echo/v4"
)

// *usecase.CatalogUsecase が満たす
type CatalogService interface {
	AdminProducts(ctx context.Context, adminID int64) ([]model.Product, error)
	CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error)
	OrderDetail(ctx context.Context, orderID int64) (usecase.OrderDetail, error)
	CustomerCart(ctx context.Context, customerID int64) (usecase.CartDetail, error)
	CustomerWishlists(ctx context.Context, customerID int64) ([]model.Wishlist, error)
	WishlistProducts(ctx context.Context, wishlistID int64) ([]model.Product, error)
	ProductPromotions(ctx context.Context, productID int64) ([]model.Promotion, error)
}

// 管理画面向けの関連データ参照
type CatalogHandler struct {
	uc CatalogService
}

// DI
func NewCatalogHandler(uc CatalogService) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// /admin グループ（JWT必須）に登録
func (h *CatalogHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/admins/:id/products", h.adminProducts)
	admin.GET("/customers/:id/orders", h.customerOrders)
	admin.GET("/customers/:id/cart", h.customerCart)
	admin.GET("/customers/:id/wishlists", h.customerWishlists)
	admin.GET("/orders/:id", h.orderDetail)
	admin.GET("/wishlists/:id/products", h.wishlistProducts)
	admin.GET("/products/:id/promotions", h.productPromotions)
}

func (h *CatalogHandler) adminProducts(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	out, err := h.uc.AdminProducts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) customerOrders(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	out, err := h.uc.CustomerOrders(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) customerCart(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	out, err := h.uc.CustomerCart(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) customerWishlists(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	out, err := h.uc.CustomerWishlists(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) orderDetail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	out, err := h.uc.OrderDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) wishlistProducts(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	out, err := h.uc.WishlistProducts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) productPromotions(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	out, err := h.uc.ProductPromotions(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
