package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"servicehub-server/internal/config"
	"servicehub-server/internal/notifier"
	"servicehub-server/internal/routes"
	"servicehub-server/internal/session"
	"servicehub-server/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment defaults")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize the in-memory data store with its seed fixtures
	dataStore, err := store.New()
	if err != nil {
		log.Fatalf("Error seeding data store: %v", err)
	}

	// Initialize the on-disk session store
	sessions, err := session.NewStore(cfg.StateDir)
	if err != nil {
		log.Fatalf("Error initializing session store: %v", err)
	}

	// Initialize the background notifier
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	notify := notifier.New(dataStore.Notifications, logger, notifier.Config{Interval: cfg.NotifyInterval})
	defer notify.StopAll()

	// Resume the notifier for a previously signed-in user, if any
	if record, ok := sessions.Load(); ok {
		notify.Start(context.Background(), record.ID)
		logger.Info("restored session", "user", record.Email)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, dataStore, sessions, notify, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
