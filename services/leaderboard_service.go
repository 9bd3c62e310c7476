package services

import (
	"fmt"
	"log"
	"time"

	"whatbeats/models"

	"gorm.io/gorm"
)

const defaultLeaderboardLimit = 100

type LeaderboardRow struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
}

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{
		db: db,
	}
}

// RecordFinish appends a finished game's final score. Only called for
// games that scored above zero.
func (s *LeaderboardService) RecordFinish(playerName string, score int) error {
	entry := models.ScoreboardEntry{
		PlayerName:  playerName,
		Score:       score,
		CreatedDate: time.Now().UTC(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("%w: failed to record finish: %v", ErrStore, err)
	}

	log.Printf("Recorded finish for %s with score %d", playerName, score)
	return nil
}

// List returns entries ordered by score descending, ties in unspecified
// order. Non-positive limits fall back to the default of 100.
func (s *LeaderboardService) List(limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	var rows []LeaderboardRow
	err := s.db.Model(&models.ScoreboardEntry{}).
		Select("player_name", "score").
		Order("score DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch leaderboard: %v", ErrStore, err)
	}

	return rows, nil
}
