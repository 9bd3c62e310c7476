package services

import (
	"context"

	"whatbeats/models"

	"github.com/stretchr/testify/mock"
)

// --- RoomStore ---

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) Create(ctx context.Context, startSubject, playerName string) (*models.Room, error) {
	args := m.Called(ctx, startSubject, playerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomStore) Get(ctx context.Context, id string) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomStore) Save(ctx context.Context, room *models.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Arbiter ---

type MockArbiter struct {
	mock.Mock
}

func (m *MockArbiter) Judge(ctx context.Context, guess, subject string, history []models.ConversationTurn) (*models.Verdict, error) {
	args := m.Called(ctx, guess, subject, history)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Verdict), args.Error(1)
}

func (m *MockArbiter) HistoryEntry(subject, guess string, verdict *models.Verdict) []models.ConversationTurn {
	args := m.Called(subject, guess, verdict)
	return args.Get(0).([]models.ConversationTurn)
}

// --- WordLedger ---

type MockWordLedger struct {
	mock.Mock
}

func (m *MockWordLedger) RecordSuccess(word, guesser string) (*models.GuessedWord, bool, error) {
	args := m.Called(word, guesser)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.GuessedWord), args.Bool(1), args.Error(2)
}

// --- ScoreKeeper ---

type MockScoreKeeper struct {
	mock.Mock
}

func (m *MockScoreKeeper) RecordFinish(playerName string, score int) error {
	args := m.Called(playerName, score)
	return args.Error(0)
}
