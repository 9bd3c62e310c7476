package models

import "time"

// Conversation roles and fragment types, mirroring the oracle's wire format.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	FragmentInputText  = "input_text"
	FragmentOutputText = "output_text"
)

type ContentFragment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ConversationTurn struct {
	Role    string            `json:"role"`
	Content []ContentFragment `json:"content"`
}

// Room is one player's in-progress game. It lives in Redis as a JSON
// document and is deleted when the game ends.
type Room struct {
	ID             string             `json:"id"`
	PlayerName     string             `json:"playerName"`
	CurrentSubject string             `json:"currentSubject"`
	Score          int                `json:"score"`
	History        []ConversationTurn `json:"history"`
	WordHistory    []string           `json:"wordHistory"` // last accepted subjects, capped at 20
	Ended          bool               `json:"ended"`
	CreatedDate    time.Time          `json:"createdDate"`
	LastUpdate     time.Time          `json:"lastUpdate"`
}
