package handlers

import (
	"context"

	"whatbeats/services"

	"github.com/stretchr/testify/mock"
)

// --- GameEngine ---

type MockGameEngine struct {
	mock.Mock
}

func (m *MockGameEngine) CreateRoom(ctx context.Context, startSubject, playerName string) (string, error) {
	args := m.Called(ctx, startSubject, playerName)
	return args.String(0), args.Error(1)
}

func (m *MockGameEngine) DeleteRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockGameEngine) SubmitGuess(ctx context.Context, roomID, guess string) (*services.GuessResult, error) {
	args := m.Called(ctx, roomID, guess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.GuessResult), args.Error(1)
}

// --- Leaderboard ---

type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) List(limit int) ([]services.LeaderboardRow, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.LeaderboardRow), args.Error(1)
}
