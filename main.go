package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/devfolio/devfolio-api/internal/config"
	"github.com/devfolio/devfolio-api/internal/portfolio"
	"github.com/devfolio/devfolio-api/internal/portfolio/handler"
	"github.com/devfolio/devfolio-api/internal/portfolio/service"
	"github.com/devfolio/devfolio-api/internal/portfolio/store"
	"github.com/devfolio/devfolio-api/pkg/logger"
	"github.com/devfolio/devfolio-api/pkg/metrics"
	"github.com/devfolio/devfolio-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: store_bin=%v admin_key_set=%v redis=%v",
		cfg.Store.BinID != "", cfg.Admin.Key != "", cfg.Redis.Host != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+middleware.AdminKeyHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (admin-keyed when the header is present, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Document store: the remote bin when configured, otherwise an in-process
	// document for local development.
	var docStore store.Store
	if cfg.Store.BinID != "" {
		docStore = store.NewClient(cfg.Store.BaseURL, cfg.Store.BinID, cfg.Store.APIKey, cfg.Store.Timeout)
	} else {
		logger.Warnf("STORE_BIN_ID not set — using in-memory document store (data is not persisted)")
		docStore = store.NewMemory(&portfolio.Document{})
	}

	svc := service.NewService(docStore)
	gate := middleware.NewAdminGate(cfg.Admin.Key)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: ready when the remote document answers a load
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if _, err := docStore.Load(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "uptime": time.Since(startTime).String()})
	})

	handler.RegisterValidators()
	handler.Register(r, svc, gate, cfg.Admin.PublicCodeCreate)

	// Static pages (portfolio front-end), when a directory is configured
	if cfg.Server.StaticDir != "" {
		r.Static("/public", cfg.Server.StaticDir)
		r.StaticFile("/projects.html", filepath.Join(cfg.Server.StaticDir, "projects.html"))
		r.StaticFile("/admin-share-projects.html", filepath.Join(cfg.Server.StaticDir, "admin-share-projects.html"))
	}

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting devfolio api on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
