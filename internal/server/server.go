package server

import (
	"shopdb/internal/middleware"
	"shopdb/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func New(log *zap.Logger, jwtSecret string, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	RegisterRoutes(e, jwtSecret, h)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
