package services

import (
	"context"

	"whatbeats/models"
)

// Collaborators of the round resolution engine. The concrete services below
// satisfy these; tests substitute mocks.

type RoomStore interface {
	Create(ctx context.Context, startSubject, playerName string) (*models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	Save(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
}

type Arbiter interface {
	Judge(ctx context.Context, guess, subject string, history []models.ConversationTurn) (*models.Verdict, error)
	HistoryEntry(subject, guess string, verdict *models.Verdict) []models.ConversationTurn
}

type WordLedger interface {
	RecordSuccess(word, guesser string) (*models.GuessedWord, bool, error)
}

type ScoreKeeper interface {
	RecordFinish(playerName string, score int) error
}
