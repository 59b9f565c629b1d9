package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"yardflow/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	motoHandler *handler.MotorcycleHandler,
	userHandler *handler.UserHandler,
	rentalHandler *handler.RentalHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Rental pricing
	api.POST("/locacoes/calcular", rentalHandler.Calculate)
	api.GET("/locacoes", rentalHandler.List)

	// Motorcycle inventory
	api.GET("/moto", motoHandler.List)
	api.GET("/moto/:id", motoHandler.Get)
	api.POST("/moto", motoHandler.Create)
	api.PUT("/moto/:id", motoHandler.Update)
	api.DELETE("/moto/:id", motoHandler.Delete)

	// User accounts
	api.GET("/usuarios", userHandler.List)
	api.GET("/usuarios/:id", userHandler.Get)
	api.POST("/usuarios", userHandler.Create)
	api.PUT("/usuarios/:id", userHandler.Update)
	api.DELETE("/usuarios/:id", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
