package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"whatbeats/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboardRouter(board Leaderboard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewLeaderboardHandler(board)
	router.GET("/leaderboard", handler.GetLeaderboard)
	return router
}

func TestGetLeaderboard(t *testing.T) {
	rows := []services.LeaderboardRow{
		{PlayerName: "alice", Score: 12},
		{PlayerName: "bob", Score: 7},
	}

	testCases := []struct {
		name          string
		path          string
		expectedLimit int
	}{
		{"no limit falls back to service default", "/leaderboard", 0},
		{"explicit limit", "/leaderboard?limit=5", 5},
		{"non-numeric limit ignored", "/leaderboard?limit=abc", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			board := &MockLeaderboard{}
			board.On("List", tc.expectedLimit).Return(rows, nil)
			router := newLeaderboardRouter(board)

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			router.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)

			var got []services.LeaderboardRow
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
			assert.Equal(t, rows, got)
			board.AssertExpectations(t)
		})
	}
}

func TestGetLeaderboard_ServiceFailure(t *testing.T) {
	board := &MockLeaderboard{}
	board.On("List", 0).Return(nil, errors.New("db down"))
	router := newLeaderboardRouter(board)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}
