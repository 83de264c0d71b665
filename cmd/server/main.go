package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mafia-game/backend/internal/game"
	"github.com/mafia-game/backend/internal/handlers"
)

func main() {
	// Time-seeded engine; tests inject their own rng
	engine := game.NewEngine(nil)

	// Setup Gin router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		// Get allowed origin from environment variable, default to "*" for development
		allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
		if allowedOrigin == "" {
			allowedOrigin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// API routes
	api := router.Group("/api")
	{
		api.POST("/games", handlers.InitializeGame(engine))
		api.POST("/games/:host/join", handlers.JoinGame(engine))
		api.POST("/games/:host/start", handlers.StartGame(engine))
		api.POST("/games/:host/accusations", handlers.Accuse(engine))
		api.POST("/games/:host/kill-votes", handlers.VoteToKill(engine))
		api.POST("/games/:host/phase", handlers.ExecutePhase(engine))
		api.POST("/games/:host/cancel", handlers.CancelGame(engine))
		api.POST("/games/:host/finish", handlers.FinishGame(engine))
		api.GET("/games/:host", handlers.GetGameState(engine))
		api.GET("/games/:host/players", handlers.GetPlayerList(engine))
		api.GET("/games/:host/self", handlers.GetSelfPlayerInfo(engine))
	}

	// WebSocket endpoint for game notifications
	router.GET("/ws", handlers.HandleWebSocket())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Mafia Game Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
