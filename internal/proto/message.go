package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateRoom = "createRoom"
	InboundTypeJoinRoom   = "joinRoom"
	InboundTypeMakeMove   = "makeMove"
	// InboundTypeMove is the superseded alias for makeMove, still accepted
	// for older clients.
	InboundTypeMove      = "move"
	InboundTypeLeaveRoom = "leaveRoom"
	InboundTypeGetFen    = "getFen"

	OutboundTypeAck   = "ack"
	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventStartGame  = "startGame"
	EventMoveMade   = "moveMade"
	EventPlayerLeft = "playerLeft"
)

// RoomData addresses a request at one room.
type RoomData struct {
	RoomID string `json:"roomId"`
}

// MoveData is a move submission.
type MoveData struct {
	RoomID    string `json:"roomId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// Outbound is the envelope for messages sent to the client. Acks carry the
// request type in Event; broadcasts carry the event name.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// CreateRoomAck acknowledges createRoom.
type CreateRoomAck struct {
	OK     bool   `json:"ok"`
	RoomID string `json:"roomId,omitempty"`
	Color  string `json:"color,omitempty"`
	FEN    string `json:"fen,omitempty"`
	Err    string `json:"err,omitempty"`
}

// JoinRoomAck acknowledges joinRoom. Color is null for spectators.
type JoinRoomAck struct {
	OK        bool    `json:"ok"`
	Color     *string `json:"color"`
	FEN       string  `json:"fen,omitempty"`
	Spectator bool    `json:"spectator,omitempty"`
	Err       string  `json:"err,omitempty"`
}

// MoveAck acknowledges makeMove.
type MoveAck struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// LeaveAck acknowledges leaveRoom.
type LeaveAck struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// FenAck answers getFen.
type FenAck struct {
	OK   bool   `json:"ok"`
	FEN  string `json:"fen,omitempty"`
	Turn string `json:"turn,omitempty"`
	Err  string `json:"err,omitempty"`
}

// StartGameEvent is broadcast when the second seat fills.
type StartGameEvent struct {
	FEN          string `json:"fen"`
	PlayersCount int    `json:"playersCount"`
}

// MoveMadeEvent is broadcast to every room member on an accepted move.
type MoveMadeEvent struct {
	From      string `json:"from"`
	To        string `json:"to"`
	SAN       string `json:"san"`
	FEN       string `json:"fen"`
	Checkmate bool   `json:"checkmate"`
	Draw      bool   `json:"draw"`
	InCheck   bool   `json:"in_check"`
}

// PlayerLeftEvent is broadcast to remaining members after a departure.
type PlayerLeftEvent struct {
	PlayersCount int `json:"playersCount"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
