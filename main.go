package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homehaven/homehaven/backend/go-services/internal/config"
	"github.com/homehaven/homehaven/backend/go-services/internal/database"
	"github.com/homehaven/homehaven/backend/go-services/internal/property/handler"
	"github.com/homehaven/homehaven/backend/go-services/internal/property/service"
	"github.com/homehaven/homehaven/backend/go-services/internal/storage"
	"github.com/homehaven/homehaven/backend/go-services/pkg/logger"
	"github.com/homehaven/homehaven/backend/go-services/pkg/metrics"
	"github.com/homehaven/homehaven/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v seed=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Seed)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: request ids + logging + recovery
	r.Use(middleware.RequestIDMiddleware())
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional request rate limiter (per client IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Property API is running"})
	})

	// Pick the property store: Mongo when configured and reachable, with
	// retry/backoff to tolerate startup races; in-memory otherwise.
	var svc service.Service
	var mongoClient *mongo.Client
	ctx := context.Background()
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v — using in-memory store", maxAttempts, errConn)
			mongoClient = nil
		}
	}
	if mongoClient != nil {
		defer func() { _ = mongoClient.Disconnect(ctx) }()
		col := mongoClient.Database(cfg.MongoDB.Database).Collection("properties")
		svc = service.NewMongoService(col)
		logger.Infof("Using MongoDB for property storage (db=%s)", cfg.MongoDB.Database)
	} else {
		// seed the demo dataset so a fresh process serves something useful
		svc = service.NewMemoryService(cfg.Seed)
		logger.Infof("Using in-memory property storage (seeded=%v)", cfg.Seed)
	}

	handler.RegisterPropertyRoutes(r, svc)
	handler.RegisterSwagger(r)

	// Optional photo uploads when object storage is configured
	var photos *storage.PhotoStorage
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		photos, err = storage.NewPhotoStorage(mcfg)
		if err != nil {
			logger.Warnf("photo storage unavailable: %v", err)
		} else {
			handler.RegisterPhotoRoutes(r, svc, photos)
			logger.Infof("Photo uploads enabled (bucket=%s)", mcfg.Bucket)
		}
	}

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		// the in-memory store is always ready; Mongo counts when configured
		deps["storage"] = true
		if cfg.MongoDB.URI != "" && mongoClient == nil {
			deps["storage"] = false
			ready = false
		}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}
		deps["photos"] = photos != nil || os.Getenv("MINIO_ENDPOINT") == ""
		if !deps["photos"] {
			ready = false
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting property service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
