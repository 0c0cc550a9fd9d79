package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nasirmondol/bistro-boss-restaurant-server/config"
	"github.com/nasirmondol/bistro-boss-restaurant-server/database"
	"github.com/nasirmondol/bistro-boss-restaurant-server/middleware"
	"github.com/nasirmondol/bistro-boss-restaurant-server/routes"
	"github.com/nasirmondol/bistro-boss-restaurant-server/stores"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := database.Connect(connectCtx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro boss is sitting")
	})

	tokens := middleware.NewTokenService(cfg.TokenSecret)
	routes.SetupRoutes(r, routes.Deps{
		Tokens:  tokens,
		Users:   stores.NewUserStore(database.OpenCollection(client, cfg.DBName, "user")),
		Menu:    stores.NewMenuStore(database.OpenCollection(client, cfg.DBName, "menu")),
		Reviews: stores.NewReviewStore(database.OpenCollection(client, cfg.DBName, "reviews")),
		Carts:   stores.NewCartStore(database.OpenCollection(client, cfg.DBName, "carts")),
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Bistro boss running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown:", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Println("Database disconnect:", err)
	}
}
