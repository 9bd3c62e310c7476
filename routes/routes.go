package routes

import (
	"net/http"
	"time"

	"whatbeats/handlers"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

func SetupRoutes(
	router *gin.Engine,
	gameHandler *handlers.GameHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	dbHandler *handlers.DBHandler,
	devmode bool,
) {
	game := router.Group("/game")
	{
		game.POST("/create", gameHandler.CreateRoom)
		game.POST("/guess", gameHandler.SubmitGuess)
		game.DELETE("/delete/:roomId", gameHandler.DeleteRoom)
	}

	router.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

	// Store diagnostics, development only
	if devmode {
		router.GET("/db", dbHandler.GetDBInfo)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"uptime": time.Since(startTime).Seconds(),
		})
	})
}
