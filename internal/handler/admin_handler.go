package handler

import (
	"context"
	"net/http"
	"net/url"

	"shopdb/internal/domain/model"
	"shopdb/internal/middleware"
	"shopdb/internal/usecase"

	"github.com/labstack/echo/v4"
)

// *usecase.AdminUsecase が満たす
type AdminService interface {
	Create(ctx context.Context, in usecase.CreateAdminInput) (model.Admin, error)
	UpdateRole(ctx context.Context, email string, role model.Role) (model.Admin, error)
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]model.Admin, error)
	Login(ctx context.Context, email string, password string) (usecase.AdminLoginOutput, error)
}

// POST /admin/admins
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=Admin SuperAdmin"`
}

// PUT /admin/admins/:email/role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin SuperAdmin"`
}

// POST /auth/admin/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminListResponse struct {
	Items []model.Admin `json:"items"`
}

// /auth/admin と /admin/admins をまとめる
type AdminHandler struct {
	uc AdminService
}

// DI
func NewAdminHandler(uc AdminService) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ★ admin は AuthJWT 済みの /admin グループ。更新系はさらに「SuperAdmin限定」
func (h *AdminHandler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.POST("/auth/admin/login", h.login)

	admin.GET("/admins", h.list, middleware.RoleGuard(string(model.RoleAdmin), string(model.RoleSuperAdmin)))

	super := middleware.RoleGuard(string(model.RoleSuperAdmin))
	admin.POST("/admins", h.create, super)
	admin.PUT("/admins/:email/role", h.updateRole, super)
	admin.DELETE("/admins/:email", h.delete, super)
}

func (h *AdminHandler) login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) list(c echo.Context) error {
	admins, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, AdminListResponse{Items: admins})
}

func (h *AdminHandler) create(c echo.Context) error {
	var req CreateAdminRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	a, err := h.uc.Create(c.Request().Context(), usecase.CreateAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AdminHandler) updateRole(c echo.Context) error {
	email, ok := pathEmail(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	var req UpdateRoleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	a, err := h.uc.UpdateRole(c.Request().Context(), email, model.Role(req.Role))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) delete(c echo.Context) error {
	email, ok := pathEmail(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
	}

	if err := h.uc.Delete(c.Request().Context(), email); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// %40 などはデコードしてから使う
func pathEmail(c echo.Context) (string, bool) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil || email == "" {
		return "", false
	}
	return email, true
}
