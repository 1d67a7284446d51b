package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/m06522052-gif/AqeelApp/internal/config"
	"github.com/m06522052-gif/AqeelApp/internal/database"
	"github.com/m06522052-gif/AqeelApp/internal/handler"
	"github.com/m06522052-gif/AqeelApp/internal/middleware"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting aqeelapp service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := database.Open(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to open database", zap.Error(err))
	}

	// schema creation failure is fatal; the app cannot serve without a store
	if err := database.Initialize(db, cfg.Admin, zapLogger); err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	zapLogger.Info("Database ready", zap.String("driver", cfg.Database.Driver))

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, cfg.JWT)
	handlers := handler.NewHandlers(services)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "aqeelapp"})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "service": "aqeelapp"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "aqeelapp"})
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "aqeelapp",
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	router.POST("/api/v1/auth/login", handlers.Auth.Login)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTAuth(cfg.JWT.Secret))
	{
		users := v1.Group("/users")
		users.Use(middleware.RequireRole("admin"))
		{
			users.GET("", handlers.User.List)
			users.POST("", handlers.User.Create)
			users.GET("/:id", handlers.User.Get)
			users.PUT("/:id", handlers.User.Update)
			users.PUT("/:id/active", handlers.User.SetActive)
			users.DELETE("/:id", handlers.User.Delete)
		}

		warehouses := v1.Group("/warehouses")
		{
			warehouses.GET("", handlers.Warehouse.List)
			warehouses.POST("", handlers.Warehouse.Create)
			warehouses.GET("/:id", handlers.Warehouse.Get)
			warehouses.PUT("/:id", handlers.Warehouse.Update)
			warehouses.DELETE("/:id", handlers.Warehouse.Delete)
		}

		batches := v1.Group("/batches")
		{
			batches.GET("", handlers.Batch.List)
			batches.POST("", handlers.Batch.Create)
			batches.GET("/:id", handlers.Batch.Get)
			batches.PUT("/:id", handlers.Batch.Update)
			batches.DELETE("/:id", handlers.Batch.Delete)
		}

		workers := v1.Group("/workers")
		{
			workers.GET("", handlers.Worker.List)
			workers.POST("", handlers.Worker.Create)
			workers.GET("/:id", handlers.Worker.Get)
			workers.GET("/:id/stats", handlers.Worker.Stats)
			workers.PUT("/:id", handlers.Worker.Update)
			workers.DELETE("/:id", handlers.Worker.Delete)
		}

		distributions := v1.Group("/distributions")
		{
			distributions.GET("", handlers.Distribution.List)
			distributions.POST("", handlers.Distribution.Create)
			distributions.GET("/:id", handlers.Distribution.Get)
			distributions.PUT("/:id", handlers.Distribution.Update)
			distributions.DELETE("/:id", handlers.Distribution.Delete)
		}

		production := v1.Group("/production")
		{
			production.GET("", handlers.Production.List)
			production.POST("", handlers.Production.Create)
			production.GET("/:id", handlers.Production.Get)
			production.PUT("/:id", handlers.Production.Update)
			production.DELETE("/:id", handlers.Production.Delete)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", handlers.Payment.List)
			payments.POST("", handlers.Payment.Create)
			payments.GET("/:id", handlers.Payment.Get)
			payments.PUT("/:id", handlers.Payment.Update)
			payments.DELETE("/:id", handlers.Payment.Delete)
		}

		movements := v1.Group("/inventory-movements")
		{
			movements.GET("", handlers.Movement.List)
			movements.POST("", handlers.Movement.Create)
			movements.GET("/:id", handlers.Movement.Get)
			movements.DELETE("/:id", handlers.Movement.Delete)
		}

		materials := v1.Group("/materials")
		{
			materials.GET("", handlers.Material.List)
			materials.POST("", handlers.Material.Create)
			materials.GET("/alerts", handlers.Material.Alerts)
			materials.GET("/:id", handlers.Material.Get)
			materials.PUT("/:id", handlers.Material.Update)
			materials.DELETE("/:id", handlers.Material.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/dashboard", handlers.Report.Dashboard)
			reports.GET("/summary", handlers.Report.Summary)
			reports.GET("/export", handlers.Report.Export)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zapCfg.Build()
}
