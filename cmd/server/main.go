package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"realtymap/internal/config"
	"realtymap/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Realty Analysis Map")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("📁 Using database: %s", cfg.Database.Path)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize handlers
	mapHandler := handler.NewMapHandler(cfg)
	listingsHandler := handler.NewListingsHandler(cfg.Database.Path)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	// Map page
	router.GET("/", mapHandler.ServePage)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "realty-analysis-map",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/listings", listingsHandler.Listings)
		apiV1.GET("/analysis", listingsHandler.Analysis)
		apiV1.GET("/crime-clusters", listingsHandler.CrimeClusters)
		apiV1.GET("/cities", listingsHandler.Cities)
	}

	// Start server
	addr := cfg.Addr()
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("🌐 Map: http://%s/", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
