package main

import (
	"log"
	"net/http"

	_ "yardflow/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"yardflow/internal/cache"
	"yardflow/internal/config"
	"yardflow/internal/db"
	"yardflow/internal/handler"
	"yardflow/internal/pricing"
	"yardflow/internal/repository"
	"yardflow/internal/router"
	"yardflow/internal/service"
)

// @title YardFlow Rental API
// @version 1.0
// @description Motorcycle rental API: inventory, user accounts and rental price calculation.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	policy, err := pricing.ParsePolicy(cfg.DatePolicy)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	motoRepo := repository.NewMotorcycleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	rentalRepo := repository.NewRentalRepository(gormDB)

	// Initialize services
	motoService := service.NewMotorcycleService(motoRepo, cacheClient)
	userService := service.NewUserService(userRepo)
	rentalService := service.NewRentalService(motoRepo, rentalRepo, cacheClient, policy, cfg.PersistRentals)

	// Initialize handlers
	motoHandler := handler.NewMotorcycleHandler(motoService)
	userHandler := handler.NewUserHandler(userService)
	rentalHandler := handler.NewRentalHandler(rentalService)

	// Register routes
	router.Register(e, motoHandler, userHandler, rentalHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
