package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"whatbeats/models"

	"github.com/redis/go-redis/v9"
)

const (
	roomKeyPrefix = "room:"
	// Rooms are ephemeral; an abandoned room only ever ends by expiry.
	roomTTL = 24 * time.Hour
)

type RoomService struct {
	redis *redis.Client
}

func NewRoomService(redis *redis.Client) *RoomService {
	return &RoomService{
		redis: redis,
	}
}

func (s *RoomService) Create(ctx context.Context, startSubject, playerName string) (*models.Room, error) {
	now := time.Now().UTC()
	room := &models.Room{
		ID:             s.generateRoomID(),
		PlayerName:     playerName,
		CurrentSubject: startSubject,
		Score:          0,
		History:        []models.ConversationTurn{},
		WordHistory:    []string{startSubject},
		Ended:          false,
		CreatedDate:    now,
		LastUpdate:     now,
	}

	if err := s.Save(ctx, room); err != nil {
		return nil, err
	}

	log.Printf("Created room %s for player %s (subject: %s)", room.ID, playerName, startSubject)
	return room, nil
}

// Get returns ErrRoomNotFound for unknown ids. Malformed ids never match a
// stored key, so they surface as not-found too, which keeps the engine's
// error handling uniform.
func (s *RoomService) Get(ctx context.Context, id string) (*models.Room, error) {
	data, err := s.redis.Get(ctx, roomKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("%w: failed to read room %s: %v", ErrStore, id, err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal room %s: %v", ErrStore, id, err)
	}

	return &room, nil
}

func (s *RoomService) Save(ctx context.Context, room *models.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal room %s: %v", ErrStore, room.ID, err)
	}

	if err := s.redis.Set(ctx, roomKeyPrefix+room.ID, data, roomTTL).Err(); err != nil {
		return fmt.Errorf("%w: failed to store room %s: %v", ErrStore, room.ID, err)
	}

	return nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	deleted, err := s.redis.Del(ctx, roomKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("%w: failed to delete room %s: %v", ErrStore, id, err)
	}
	if deleted == 0 {
		return ErrRoomNotFound
	}

	log.Printf("Deleted room %s", id)
	return nil
}

// generateRoomID returns a 24-character hex identifier, the shape the
// delete route validates against.
func (s *RoomService) generateRoomID() string {
	bytes := make([]byte, 12)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
