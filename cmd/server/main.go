package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dmateos/amigo/internal/config"
	"github.com/dmateos/amigo/internal/draw"
	"github.com/dmateos/amigo/internal/handlers/api"
	configRepo "github.com/dmateos/amigo/internal/repositories/config"
	sessionRepo "github.com/dmateos/amigo/internal/repositories/session"
	sessionService "github.com/dmateos/amigo/internal/services/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var sessions sessionRepo.Repository
	var configs configRepo.Repository

	if cfg.RedisConfigured() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		// Probe connectivity but keep running either way; Redis may come up
		// after we do, and each call surfaces its own error.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RedisTimeout)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis at %s not reachable yet: %v", cfg.RedisAddr, err)
		}
		cancel()

		sessions, err = sessionRepo.NewRedis(&sessionRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create session repository: %v", err)
		}

		configs, err = configRepo.NewRedis(&configRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create config repository: %v", err)
		}

		log.Printf("Using Redis storage at %s", cfg.RedisAddr)
	} else {
		sessions = sessionRepo.NewMemory()
		configs = configRepo.NewMemory()
		log.Println("REDIS_ADDR not set, using in-memory storage (single instance only)")
	}

	engine := draw.New(&draw.Config{})

	svc, err := sessionService.New(&sessionService.Config{
		SessionRepo: sessions,
		ConfigRepo:  configs,
		Engine:      engine,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	handler := api.NewAPIHandler(svc)

	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/sessions", handler.CreateSession)
		apiGroup.GET("/sessions/:id", handler.GetSession)
		apiGroup.POST("/sessions/:id/claim", handler.ClaimPerson)
		apiGroup.GET("/sessions/:id/receiver", handler.GetReceiver)
		apiGroup.POST("/configs", handler.CreateConfig)
		apiGroup.GET("/configs/:id", handler.GetConfig)
		apiGroup.GET("/kv-status", handler.KVStatus)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server listening on port %s", cfg.Port)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}
