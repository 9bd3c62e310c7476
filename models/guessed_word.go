package models

import "time"

// GuessedWord is the process-wide record of a word that has ever won a
// round, across all rooms. Rows are never deleted.
type GuessedWord struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Word           string    `json:"word" gorm:"uniqueIndex;not null"` // trimmed + lowercased
	FirstGuessedBy string    `json:"first_guessed_by" gorm:"not null"`
	GuessedCount   int64     `json:"guessed_count" gorm:"not null;default:1"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
