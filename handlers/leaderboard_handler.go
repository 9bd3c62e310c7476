package handlers

import (
	"log"
	"net/http"
	"strconv"

	"whatbeats/services"

	"github.com/gin-gonic/gin"
)

type Leaderboard interface {
	List(limit int) ([]services.LeaderboardRow, error)
}

type LeaderboardHandler struct {
	leaderboardService Leaderboard
}

func NewLeaderboardHandler(leaderboardService Leaderboard) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard handles GET /leaderboard?limit=N.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0 // service falls back to the default
	}

	rows, err := h.leaderboardService.List(limit)
	if err != nil {
		log.Printf("Error fetching leaderboard data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, rows)
}
