package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homez-ar/api/internal/config"
	"github.com/homez-ar/api/internal/database"
	"github.com/homez-ar/api/internal/handlers"
	"github.com/homez-ar/api/internal/locations"
	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/remote"
	"github.com/homez-ar/api/internal/repository"
	"github.com/homez-ar/api/internal/search"
	"github.com/homez-ar/api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Homez API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Remote property gateway and the services built on top of it
	propertyAPI := remote.NewClient(cfg.Properties.BaseURL, cfg.Properties.APIKey, cfg.Properties.Timeout, log)
	searchService := search.NewService(propertyAPI, log)
	locationIndex := locations.NewIndex(propertyAPI, log)

	// Repository and service layers
	siteConfigRepo := repository.NewSiteConfigRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	siteConfigService := services.NewSiteConfigService(siteConfigRepo, log)
	leadService := services.NewLeadService(leadRepo, log)
	authService := services.NewAuthService(adminRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	uploadService := services.NewUploadService(cfg.Uploads.Dir, log)

	// Handlers
	propertyHandler := handlers.NewPropertyHandler(searchService, propertyAPI)
	locationHandler := handlers.NewLocationHandler(locationIndex)
	siteConfigHandler := handlers.NewSiteConfigHandler(siteConfigService)
	leadHandler := handlers.NewLeadHandler(leadService)
	authHandler := handlers.NewAuthHandler(authService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env, cfg.Properties.BaseURL)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Uploaded branding assets are served straight from disk
	router.Static("/uploads", cfg.Uploads.Dir)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/properties", propertyHandler.Search)
		v1.GET("/properties/:id", propertyHandler.Get)
		v1.GET("/browse/*slug", propertyHandler.Browse)
		v1.GET("/locations", locationHandler.Suggest)
		v1.GET("/site-config", siteConfigHandler.Get)
		v1.POST("/contacts", leadHandler.CreateContact)
		v1.POST("/appraisals", leadHandler.CreateAppraisal)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(authService))
		{
			admin.GET("/me", authHandler.Me)
			admin.PUT("/site-config", siteConfigHandler.Update)
			admin.GET("/contacts", leadHandler.ListContacts)
			admin.PATCH("/contacts/:id", leadHandler.UpdateContactStatus)
			admin.GET("/appraisals", leadHandler.ListAppraisals)
			admin.POST("/uploads/:kind", uploadHandler.Upload)
		}
	}

	// Warm the location index in the background so the first autocomplete
	// request does not pay the bulk fetch; failures just leave it empty.
	go locationIndex.EnsureBuilt(ctx)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
