package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"

	"whatbeats/services"

	"github.com/gin-gonic/gin"
)

// GameEngine is the slice of the round resolution engine the HTTP layer
// needs; tests substitute a mock.
type GameEngine interface {
	CreateRoom(ctx context.Context, startSubject, playerName string) (string, error)
	DeleteRoom(ctx context.Context, roomID string) error
	SubmitGuess(ctx context.Context, roomID, guess string) (*services.GuessResult, error)
}

var roomIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

type GameHandler struct {
	gameService GameEngine
	devmode     bool
}

func NewGameHandler(gameService GameEngine, devmode bool) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		devmode:     devmode,
	}
}

// The create/guess bodies use untyped fields so a wrong-typed value is
// handled the same way as a missing one instead of failing the JSON bind.
type CreateRoomRequest struct {
	PlayerName   any `json:"playerName"`
	StartSubject any `json:"startSubject"`
}

type GuessRequest struct {
	RoomID any `json:"roomId"`
	Guess  any `json:"guess"`
}

func (h *GameHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid body"})
		return
	}

	playerName, ok := req.PlayerName.(string)
	if !ok {
		playerName = "guest" // default name
	}

	startSubject, _ := req.StartSubject.(string)

	roomID, err := h.gameService.CreateRoom(c.Request.Context(), startSubject, playerName)
	if err != nil {
		var reqErr *services.RequestError
		if errors.As(err, &reqErr) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": reqErr.Name})
			return
		}
		log.Printf("Failed to create room: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to create room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"roomId": roomID})
}

func (h *GameHandler) SubmitGuess(c *gin.Context) {
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid body."})
		return
	}

	roomID, roomOK := req.RoomID.(string)
	guess, guessOK := req.Guess.(string)
	if !roomOK || !guessOK {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid body."})
		return
	}

	result, err := h.gameService.SubmitGuess(c.Request.Context(), roomID, guess)
	if err != nil {
		h.writeGuessError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GameHandler) DeleteRoom(c *gin.Context) {
	roomID := c.Param("roomId")
	if !roomIDPattern.MatchString(roomID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid roomId format"})
		return
	}

	if err := h.gameService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Room not found"})
			return
		}
		log.Printf("Failed to delete room %s: %v", roomID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Room deleted"})
}

// writeGuessError maps pipeline failures onto the wire contract: game-logic
// rejections are 400 with a stable name (plus a code where the UI branches
// on it), infrastructure failures are 500 with debug detail only in
// devmode.
func (h *GameHandler) writeGuessError(c *gin.Context, err error) {
	var reqErr *services.RequestError
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"name": "Room not found"}})
	case errors.Is(err, services.ErrRoomEnded):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"name": "Room has ended"}})
	case errors.As(err, &reqErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"name": reqErr.Name, "code": reqErr.Code}})
	case errors.Is(err, services.ErrOracle), errors.Is(err, services.ErrSchema):
		log.Printf("Oracle failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.serverError("OracleError", err)})
	case errors.Is(err, services.ErrStore):
		log.Printf("Store failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.serverError("StoreError", err)})
	default:
		log.Printf("Unexpected guess failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.serverError("InternalError", err)})
	}
}

func (h *GameHandler) serverError(name string, err error) gin.H {
	payload := gin.H{"name": name}
	if h.devmode {
		payload["debug"] = err.Error()
	}
	return payload
}
