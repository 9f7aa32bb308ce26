// main.go - Read-Only Media Catalog API
package main

import (
	"log"
	"strings"
	"sync"
	"time"

	"glorystream/internal/config"
	"glorystream/internal/database"
	"glorystream/internal/handlers"
	"glorystream/internal/middleware"
	"glorystream/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Environment)

	// Initialize database connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize services
	catalogService := services.NewCatalogService(db)
	episodeService := services.NewEpisodeService(db)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	episodeHandler := handlers.NewEpisodeHandler(episodeService)

	// Initialize rate limiter
	rateLimiter := NewRateLimiter()

	// Setup router
	router := setupRouter(cfg, rateLimiter)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		dbStats := database.Stats(db)

		c.JSON(200, gin.H{
			"status":   "healthy",
			"database": database.Health(db) == nil,
			"app":      "ministry-media-catalog",
			"features": gin.H{
				"catalog":          true,
				"facets":           true,
				"telecast_archive": true,
			},
			"database_stats": gin.H{
				"open_connections": dbStats.OpenConnections,
				"in_use":           dbStats.InUse,
				"idle":             dbStats.Idle,
			},
		})
	})

	// Setup routes
	setupRoutes(router, catalogHandler, episodeHandler)

	// Start server
	port := cfg.Port
	log.Printf("🚀 Media Catalog API starting on port %s", port)
	log.Printf("🌍 Environment: %s", cfg.Environment)
	log.Printf("📱 Read-only endpoints:")
	log.Printf("   • Catalog browsing with cascading facets: ✅")
	log.Printf("   • Telecast archive by year/month: ✅")

	log.Fatal(router.Run(":" + port))
}

func setupRouter(cfg *config.Config, rateLimiter *RateLimiter) *gin.Engine {
	router := gin.Default()

	// GZIP compression, skipping media payload extensions
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{
		".mp4", ".avi", ".mov", ".webm", ".mp3", ".wav", ".ogg"})))

	router.Use(middleware.RequestID())
	router.Use(createRateLimitMiddleware(rateLimiter))

	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Authorization",
			"Cache-Control", "If-None-Match", "If-Modified-Since",
			"X-Request-ID",
		},
		ExposeHeaders: []string{
			"Content-Length", "Cache-Control", "Last-Modified", "ETag",
			"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After",
			"X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Next()
	})

	return router
}

func setupRoutes(
	router *gin.Engine,
	catalogHandler *handlers.CatalogHandler,
	episodeHandler *handlers.EpisodeHandler,
) {
	api := router.Group("/api/v1")

	// ===============================
	// CATALOG ENDPOINTS
	// ===============================
	catalog := api.Group("/catalog")
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.GET("/facets", catalogHandler.GetFacets)
		catalog.GET("/:videoId", catalogHandler.GetCatalogRecord)
	}

	// ===============================
	// TELECAST EPISODE ENDPOINTS
	// ===============================
	episodes := api.Group("/episodes")
	{
		episodes.GET("", episodeHandler.GetEpisodes)
		episodes.GET("/years", episodeHandler.GetYears)
		episodes.GET("/months", episodeHandler.GetMonths)
	}
}

// In-process IP rate limiter
type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.RWMutex
}

type Visitor struct {
	requests int
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
	}
	go rl.cleanupRoutine()
	return rl
}

func (rl *RateLimiter) Allow(ip string, limit int, window time.Duration) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[ip]
	now := time.Now()

	if !exists || now.Sub(visitor.lastSeen) > window {
		rl.visitors[ip] = &Visitor{
			requests: 1,
			lastSeen: now,
		}
		return true
	}

	if visitor.requests >= limit {
		return false
	}

	visitor.requests++
	visitor.lastSeen = now
	return true
}

func (rl *RateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, visitor := range rl.visitors {
		if visitor.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

func createRateLimitMiddleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		path := c.Request.URL.Path

		var limit int
		window := time.Minute

		if strings.Contains(path, "/facets") {
			limit = 300
		} else if strings.Contains(path, "/catalog") || strings.Contains(path, "/episodes") {
			limit = 100
		} else {
			limit = 200
		}

		if !rateLimiter.Allow(ip, limit, window) {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "60")

			c.JSON(429, gin.H{
				"error":   "Rate limit exceeded",
				"message": "Too many requests, please try again later",
				"limit":   limit,
				"window":  window.String(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
