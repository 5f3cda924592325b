package main

import (
	"context"                         // context package is needed for Redis operations
	"errors"                          // Server shutdown detection
	"fitness_tracker/internal/api"    // Custom package for API handlers
	"fitness_tracker/internal/config" // Custom package for configuration
	"fitness_tracker/internal/db"     // Custom package for the database
	"fitness_tracker/internal/store"  // Custom package for persistence
	"fitness_tracker/internal/utils"  // Tokens and denylist
	"net/http"                        // HTTP server
	"os"                              // Signal handling
	"os/signal"                       // Signal handling
	"syscall"                         // SIGTERM
	"time"                            // Shutdown timeout

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Connect to the database; the handle lives as long as the process
	database, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logrus.Errorf("failed to close DB: %v", err)
		}
	}()

	// Token denylist: Redis when configured, in-process otherwise
	var denylist utils.Denylist = utils.NewMemoryDenylist()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		defer redisClient.Close()
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		denylist = utils.NewRedisDenylist(redisClient)
	} else {
		logrus.Warn("REDIS_ADDR not set, revoked tokens are kept in memory")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Store:        store.New(database),
		Tokens:       utils.NewTokenManager(cfg.JWTSecret),
		Denylist:     denylist,
		SecretKey:    cfg.SecretKey,
		CookieSecure: cfg.JWTCookieSecure,
		CORSOrigins:  cfg.CORSOrigins,
	})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}
	logrus.Info("Server stopped")
}
