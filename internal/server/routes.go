package server

import (
	"net/http"

	"shopdb/internal/handler"
	"shopdb/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Admin   *handler.AdminHandler
	Catalog *handler.CatalogHandler
}

func RegisterRoutes(e *echo.Echo, jwtSecret string, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	//JWT必須
	admin := e.Group("/admin", middleware.AuthJWT(jwtSecret))

	h.Admin.RegisterRoutes(e, admin)
	h.Catalog.RegisterRoutes(admin)
}
