package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"whatbeats/models"

	"gorm.io/gorm"
)

// WordService is the cross-game ledger of winning words. It is advisory:
// callers treat its failures as missing metadata, never as a failed round.
type WordService struct {
	db *gorm.DB
}

func NewWordService(db *gorm.DB) *WordService {
	return &WordService{
		db: db,
	}
}

// RecordSuccess registers a winning guess. The first winner of a word is
// remembered forever; later wins only bump the counter. Returns the entry
// and whether this was the word's first-ever win.
func (s *WordService) RecordSuccess(word, guesser string) (*models.GuessedWord, bool, error) {
	normalized := normalizeWord(word)
	if normalized == "" {
		return nil, false, fmt.Errorf("%w: cannot record empty word", ErrStore)
	}

	var entry models.GuessedWord
	err := s.db.Where("word = ?", normalized).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.GuessedWord{
			Word:           normalized,
			FirstGuessedBy: guesser,
			GuessedCount:   1,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			return nil, false, fmt.Errorf("%w: failed to create word entry: %v", ErrStore, err)
		}
		log.Printf("Word %q won for the first time, found by %s", normalized, guesser)
		return &entry, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to look up word entry: %v", ErrStore, err)
	}

	if err := s.db.Model(&entry).
		Update("guessed_count", gorm.Expr("guessed_count + ?", 1)).Error; err != nil {
		return nil, false, fmt.Errorf("%w: failed to increment word counter: %v", ErrStore, err)
	}
	entry.GuessedCount++

	return &entry, false, nil
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
