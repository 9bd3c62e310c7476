package handlers

import (
	"log"
	"net/http"

	"whatbeats/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DBHandler serves store diagnostics. Only mounted in devmode.
type DBHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewDBHandler(db *gorm.DB, redis *redis.Client) *DBHandler {
	return &DBHandler{
		db:    db,
		redis: redis,
	}
}

func (h *DBHandler) GetDBInfo(c *gin.Context) {
	ctx := c.Request.Context()

	var guessedWords int64
	if err := h.db.Model(&models.GuessedWord{}).Count(&guessedWords).Error; err != nil {
		log.Printf("Failed to count guessed words: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch DB info"})
		return
	}

	var scoreboardEntries int64
	if err := h.db.Model(&models.ScoreboardEntry{}).Count(&scoreboardEntries).Error; err != nil {
		log.Printf("Failed to count scoreboard entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch DB info"})
		return
	}

	roomKeys, err := h.redis.Keys(ctx, "room:*").Result()
	if err != nil {
		log.Printf("Failed to count rooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch DB info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guessedWords":      guessedWords,
		"scoreboardEntries": scoreboardEntries,
		"activeRooms":       len(roomKeys),
	})
}
