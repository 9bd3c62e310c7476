package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whatbeats/config"
	"whatbeats/handlers"
	"whatbeats/models"
	"whatbeats/routes"
	"whatbeats/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
)

func main() {
	if err := godotenv.Load(".env", ".env.local"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.GuessedWord{},
		&models.ScoreboardEntry{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize oracle client
	oracleConfig := openai.DefaultConfig(cfg.LLMAPIToken)
	if cfg.LLMAPIEndpoint != "" {
		oracleConfig.BaseURL = cfg.LLMAPIEndpoint
	}
	if cfg.ArbiterTimeout > 0 {
		oracleConfig.HTTPClient = &http.Client{Timeout: cfg.ArbiterTimeout}
	}
	oracleClient := openai.NewClientWithConfig(oracleConfig)

	// Initialize services
	roomService := services.NewRoomService(redisClient)
	arbiterService := services.NewArbiterService(oracleClient, cfg.LLMModelName)
	wordService := services.NewWordService(db)
	leaderboardService := services.NewLeaderboardService(db)
	gameService := services.NewGameService(roomService, arbiterService, wordService, leaderboardService)

	// Initialize handlers
	gameHandler := handlers.NewGameHandler(gameService, cfg.Devmode)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	dbHandler := handlers.NewDBHandler(db, redisClient)

	// Setup Gin router
	if !cfg.Devmode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.Default())

	routes.SetupRoutes(router, gameHandler, leaderboardHandler, dbHandler, cfg.Devmode)

	server := &http.Server{
		Addr:        cfg.BindAddress + ":" + cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// The oracle round-trip happens inside the request, so the write
		// timeout has to outlast it.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then close the stores.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Database close error: %v", err)
		}
	}

	log.Println("Shutdown complete")
}
