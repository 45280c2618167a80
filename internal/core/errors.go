package core

import "errors"

// Error codes for domain errors.
const (
	ErrCodeRoomNotFound  = "room_not_found"
	ErrCodeNotAPlayer    = "not_a_player"
	ErrCodeNotYourTurn   = "not_your_turn"
	ErrCodeIllegalMove   = "illegal_move"
	ErrCodeAlreadyJoined = "already_joined"
	ErrCodeBadRequest    = "bad_request"
)

// ErrIllegalMove is returned by Position implementations when a submission
// matches no legal move.
var ErrIllegalMove = errors.New("illegal move")

// CoreError wraps a code and human-readable message. Clients surface the
// message verbatim, so the wording is part of the protocol.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}

var (
	errRoomNotFound  = coreError(ErrCodeRoomNotFound, "Room not found")
	errNotAPlayer    = coreError(ErrCodeNotAPlayer, "Not a player")
	errNotYourTurn   = coreError(ErrCodeNotYourTurn, "Not your turn")
	errIllegalMove   = coreError(ErrCodeIllegalMove, "Illegal move")
	errAlreadyJoined = coreError(ErrCodeAlreadyJoined, "Already in a room")
)
