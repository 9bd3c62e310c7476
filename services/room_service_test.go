package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoomID(t *testing.T) {
	s := &RoomService{}
	pattern := regexp.MustCompile(`^[0-9a-f]{24}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.generateRoomID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "room ids must not repeat")
		seen[id] = true
	}
}

func TestNormalizeWord(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Water", "water"},
		{"  Fire Truck  ", "fire truck"},
		{"ROCK", "rock"},
		{"   ", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, normalizeWord(tc.in))
	}
}
