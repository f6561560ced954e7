package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/api"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/config"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/session"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/storage"
	"github.com/nhuanhtuanzz/FoodOrderWeb/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB after retries: %v", err)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectDB(cfg.DSN())
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	sessions := session.NewRedisStore(rdb)

	var kafkaWriter *kafka.Writer
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter = config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	images := storage.NewDiskStore(cfg.UploadDir)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	comboRepo := repository.NewComboRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	authService := service.NewAuthService(*userRepo, sessions, []byte(cfg.JWTSecret), cfg.SessionTTL)
	userService := service.NewUserService(*userRepo)
	categoryService := service.NewCategoryService(*categoryRepo)
	productService := service.NewProductService(*menuRepo, images)
	comboService := service.NewComboService(*comboRepo)
	voucherService := service.NewVoucherService(*voucherRepo)
	orderService := service.NewOrderService(*orderRepo, kafkaWriter)
	dashboardService := service.NewDashboardService(*dashboardRepo)

	authHandler := api.NewAuthHandler(*authService, cfg.SessionTTL)
	userHandler := api.NewUserHandler(*userService)
	categoryHandler := api.NewCategoryHandler(*categoryService)
	productHandler := api.NewProductHandler(*productService)
	comboHandler := api.NewComboHandler(*comboService)
	voucherHandler := api.NewVoucherHandler(*voucherService)
	orderHandler := api.NewOrderHandler(*orderService)
	dashboardHandler := api.NewDashboardHandler(*dashboardService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.Static("/uploads", cfg.UploadDir)

	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)

	authed := e.Group("", api.SessionMiddleware([]byte(cfg.JWTSecret)), api.SessionCheck(sessions))
	authed.POST("/logout", authHandler.Logout)

	admin := authed.Group("/admin", api.RequireAdmin)

	admin.GET("/dashboard", dashboardHandler.Summary)

	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/categories", categoryHandler.List)
	admin.POST("/categories", categoryHandler.Create)
	admin.GET("/categories/:id", categoryHandler.Get)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	admin.GET("/products", productHandler.List)
	admin.POST("/products", productHandler.Create)
	admin.GET("/products/:id", productHandler.Get)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	admin.GET("/combos", comboHandler.List)
	admin.POST("/combos", comboHandler.Create)
	admin.GET("/combos/:id", comboHandler.Get)
	admin.PUT("/combos/:id", comboHandler.Update)
	admin.DELETE("/combos/:id", comboHandler.Delete)

	admin.GET("/vouchers", voucherHandler.List)
	admin.POST("/vouchers", voucherHandler.Create)
	admin.GET("/vouchers/:id", voucherHandler.Get)
	admin.PUT("/vouchers/:id", voucherHandler.Update)
	admin.DELETE("/vouchers/:id", voucherHandler.Delete)

	admin.GET("/statuses", orderHandler.Statuses)
	admin.DELETE("/statuses/:id", orderHandler.DeleteStatus)
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/history", orderHandler.History)
	admin.GET("/orders/:id", orderHandler.Details)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "foodorder-admin",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
