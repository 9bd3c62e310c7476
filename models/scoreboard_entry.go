package models

import "time"

// ScoreboardEntry is written once when a game ends with a positive score.
// Entries are immutable.
type ScoreboardEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PlayerName  string    `json:"playerName" gorm:"not null"`
	Score       int       `json:"score" gorm:"not null"`
	CreatedDate time.Time `json:"createdDate"`
}
