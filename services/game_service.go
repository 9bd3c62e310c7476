package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"whatbeats/models"
)

const (
	defaultSubject = "computer"

	maxGuessLength           = 50
	maxNormalizedGuessLength = 25
	wordHistoryWindow        = 20
)

// GuessResult is the verdict payload returned to the client, extended with
// word-ledger metadata when the guess won and the ledger was reachable.
type GuessResult struct {
	models.Verdict
	IsFirstGuess *bool   `json:"is_first_guess,omitempty"`
	GuessedCount *int64  `json:"guessed_count,omitempty"`
	GuessMessage *string `json:"guess_message,omitempty"`
}

// GameService is the round resolution engine: it owns the guess pipeline
// and every state transition a room can make.
type GameService struct {
	rooms   RoomStore
	arbiter Arbiter
	words   WordLedger
	scores  ScoreKeeper
}

func NewGameService(rooms RoomStore, arbiter Arbiter, words WordLedger, scores ScoreKeeper) *GameService {
	return &GameService{
		rooms:   rooms,
		arbiter: arbiter,
		words:   words,
		scores:  scores,
	}
}

// CreateRoom allocates a room. An unusable startSubject silently falls back
// to the default; an out-of-bounds playerName is the one rejection.
func (s *GameService) CreateRoom(ctx context.Context, startSubject, playerName string) (string, error) {
	if len(playerName) < 1 || len(playerName) > 50 {
		return "", ErrInvalidPlayerName
	}

	if startSubject == "" || len(startSubject) > 50 {
		startSubject = defaultSubject
	}

	room, err := s.rooms.Create(ctx, startSubject, playerName)
	if err != nil {
		return "", err
	}

	return room.ID, nil
}

// DeleteRoom removes a room on explicit client request. The first call
// deletes; a second call reports not-found.
func (s *GameService) DeleteRoom(ctx context.Context, roomID string) error {
	if _, err := s.rooms.Get(ctx, roomID); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, roomID)
}

// SubmitGuess runs the round pipeline: resolve the room, validate the
// guess, check the in-room word window, consult the oracle, apply the
// verdict, and fire the end-of-game side effects. The first failing step
// aborts; nothing is partially applied.
func (s *GameService) SubmitGuess(ctx context.Context, roomID, guess string) (*GuessResult, error) {
	room, err := s.rooms.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Ended {
		return nil, ErrRoomEnded
	}
	if room.CurrentSubject == "" {
		return nil, fmt.Errorf("%w: room %s has no current subject", ErrStore, room.ID)
	}

	if len(guess) < 1 || len(guess) > maxGuessLength {
		return nil, ErrGuessInvalid
	}
	normalized := normalizeWord(guess)
	if normalized == "" || len(normalized) > maxNormalizedGuessLength {
		return nil, ErrGuessInvalid
	}

	// The word window is snapshotted once; the post-oracle repeat check
	// reuses it rather than re-fetching the room.
	wordHistory := room.WordHistory
	if containsWord(wordHistory, normalized) {
		return nil, ErrWordAlreadyUsed
	}

	subject := room.CurrentSubject
	verdict, err := s.arbiter.Judge(ctx, guess, subject, room.History)
	if err != nil {
		return nil, err
	}

	// The oracle may renormalize the guess into a form the cheap check
	// above did not catch (e.g. "apples" vs "apple").
	oracleWord := normalizeWord(verdict.UserGuess)
	if containsWord(wordHistory, oracleWord) {
		return nil, ErrWordAlreadyUsed
	}

	room.CurrentSubject = verdict.UserGuess
	room.LastUpdate = time.Now().UTC()
	if verdict.Beats {
		room.WordHistory = appendToWindow(wordHistory, oracleWord)
		room.History = append(room.History, s.arbiter.HistoryEntry(subject, verdict.UserGuess, verdict)...)
		room.Score++
	} else {
		room.Ended = true
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}

	result := &GuessResult{Verdict: *verdict}
	if verdict.Beats {
		s.attachWordMetadata(result, oracleWord, room.PlayerName)
	}

	if room.Ended {
		s.finishGame(ctx, room)
	}

	return result, nil
}

// attachWordMetadata records the win in the word ledger. Ledger trouble is
// telemetry trouble: log it and return the verdict without metadata.
func (s *GameService) attachWordMetadata(result *GuessResult, word, playerName string) {
	entry, isFirst, err := s.words.RecordSuccess(word, playerName)
	if err != nil {
		log.Printf("Failed to record word success for %q: %v", word, err)
		return
	}

	message := guessMessage(entry, isFirst)
	result.IsFirstGuess = &isFirst
	result.GuessedCount = &entry.GuessedCount
	result.GuessMessage = &message
}

// finishGame persists the score (when there is one) and removes the room.
// Neither failure is surfaced: the verdict already decided the game.
func (s *GameService) finishGame(ctx context.Context, room *models.Room) {
	if room.Score > 0 {
		if err := s.scores.RecordFinish(room.PlayerName, room.Score); err != nil {
			log.Printf("Failed to record finish for room %s: %v", room.ID, err)
		}
	}

	if err := s.rooms.Delete(ctx, room.ID); err != nil {
		log.Printf("Failed to delete ended room %s: %v", room.ID, err)
	}
}

func guessMessage(entry *models.GuessedWord, isFirst bool) string {
	if isFirst {
		return fmt.Sprintf("You are the first to win with %q!", entry.Word)
	}
	return fmt.Sprintf("%q has won %d times. First found by %s.", entry.Word, entry.GuessedCount, entry.FirstGuessedBy)
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

// appendToWindow appends and evicts the oldest entries beyond the 20-word
// cap.
func appendToWindow(words []string, word string) []string {
	updated := append(append([]string{}, words...), word)
	if len(updated) > wordHistoryWindow {
		updated = updated[len(updated)-wordHistoryWindow:]
	}
	return updated
}
