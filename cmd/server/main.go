package main

import (
	"log"
	"net/http"

	_ "github.com/Tyagianshu04/krishi-mitra/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Tyagianshu04/krishi-mitra/internal/auth"
	"github.com/Tyagianshu04/krishi-mitra/internal/cache"
	"github.com/Tyagianshu04/krishi-mitra/internal/catalog"
	"github.com/Tyagianshu04/krishi-mitra/internal/config"
	"github.com/Tyagianshu04/krishi-mitra/internal/db"
	"github.com/Tyagianshu04/krishi-mitra/internal/handler"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
	"github.com/Tyagianshu04/krishi-mitra/internal/repository"
	"github.com/Tyagianshu04/krishi-mitra/internal/router"
	"github.com/Tyagianshu04/krishi-mitra/internal/service"
	"github.com/Tyagianshu04/krishi-mitra/internal/weather"
)

// @title Krishi Mitra API
// @version 1.0
// @description Agriculture advisory API with JWT authentication, location catalogs, crop recommendations and weather snapshots.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	// Reference data loads once, before any request is served.
	catalogStore, err := catalog.NewStore()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	userRepo, err := newUserRepository(cfg)
	if err != nil {
		log.Fatalf("credential store init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	locationService := service.NewLocationService(catalogStore)
	cropService := service.NewCropService(catalogStore)
	weatherService := service.NewWeatherService(weather.NewSyntheticProvider(), cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	locationHandler := handler.NewLocationHandler(locationService)
	cropHandler := handler.NewCropHandler(cropService)
	weatherHandler := handler.NewWeatherHandler(weatherService)
	healthHandler := handler.NewHealthHandler(userRepo, catalogStore)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		locationHandler,
		cropHandler,
		weatherHandler,
		healthHandler,
	)

	log.Printf("storage driver: %s", cfg.StorageDriver)
	log.Printf("catalog: %d states, %d districts", catalogStore.StatesCount(), catalogStore.DistrictsCount())
	if cfg.SwaggerHost != "" {
		log.Printf("swagger host: %s", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// newUserRepository selects the credential store implementation from
// configuration: a process-local map by default, or a GORM-backed store.
func newUserRepository(cfg *config.Config) (repository.UserRepository, error) {
	var (
		gormDB *gorm.DB
		err    error
	)

	switch cfg.StorageDriver {
	case config.DriverMySQL:
		gormDB, err = db.NewMySQL(cfg.MySQLDSN)
	case config.DriverSQLite:
		gormDB, err = db.NewSQLite(cfg.SQLitePath)
	default:
		return repository.NewMemoryUserRepository(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		return nil, err
	}
	return repository.NewUserRepository(gormDB), nil
}
