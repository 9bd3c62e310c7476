package services

import "errors"

var (
	ErrRoomNotFound = errors.New("Room not found")
	ErrRoomEnded    = errors.New("Room has ended")

	// ErrOracle covers every arbiter failure: transport errors, error
	// envelopes, non-JSON bodies and schema-missing fields.
	ErrOracle = errors.New("oracle failure")
	// ErrSchema is a contract violation detected before any network call.
	ErrSchema = errors.New("schema violation")
	ErrStore  = errors.New("store failure")
)

// RequestError is a client-input rejection carrying the stable code the
// game UI branches on.
type RequestError struct {
	Name string
	Code string
}

func (e *RequestError) Error() string {
	return e.Name
}

var (
	ErrGuessInvalid      = &RequestError{Name: "GuessInvalid", Code: "GUESS_INVALID"}
	ErrWordAlreadyUsed   = &RequestError{Name: "WordAlreadyUsed", Code: "WORD_ALREADY_USED"}
	ErrInvalidPlayerName = &RequestError{Name: "invalid playerName length 1-50 characters"}
)
