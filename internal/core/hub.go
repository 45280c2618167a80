package core

import (
	"sync"

	"github.com/rs/zerolog"
)

// PromotionDefault is applied when a move reaches the last rank and the
// client named no promotion piece. Clients assume the same default, so
// changing it is a protocol change.
const PromotionDefault = "q"

// Hub is the session coordinator. It owns the registry, tracks which rooms
// each connection occupies, and arbitrates every intent: role and turn
// checks happen here, before the position engine is consulted.
//
// Intents are handled synchronously on the caller's goroutine. The target
// room's mutex makes each intent one atomic unit (roster mutation, engine
// mutation, broadcast); intents for different rooms proceed in parallel.
// Intents of a single connection arrive serialized from its read loop, so
// the occupancy entry of a participant is never mutated concurrently.
type Hub struct {
	registry *Registry
	log      *zerolog.Logger

	mu        sync.Mutex
	occupancy map[string]map[string]struct{} // participant id -> room ids
}

// NewHub creates a coordinator. newPosition produces a fresh engine for
// every created room.
func NewHub(newPosition func() Position, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry:  NewRegistry(newPosition),
		log:       logger,
		occupancy: make(map[string]map[string]struct{}),
	}
}

// Registry exposes the room registry, mainly for tests and diagnostics.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// RegisterClient announces a new connection to the coordinator.
func (h *Hub) RegisterClient(c *Client) {
	h.log.Debug().Str("client_id", c.ID).Msg("client connected")
}

// UnregisterClient treats a dropped connection as an implicit leave for
// every room the participant occupies. The occupancy index normally holds at
// most one room, but the removal scans whatever is recorded rather than
// assuming so. The event channel is closed once no room can reach it.
func (h *Hub) UnregisterClient(c *Client) {
	h.mu.Lock()
	ids := make([]string, 0, len(h.occupancy[c.ID]))
	for roomID := range h.occupancy[c.ID] {
		ids = append(ids, roomID)
	}
	delete(h.occupancy, c.ID)
	h.mu.Unlock()

	for _, roomID := range ids {
		if room, ok := h.registry.Lookup(roomID); ok {
			h.removeFromRoom(c.ID, room)
		}
	}
	close(c.Events)
	h.log.Debug().Str("client_id", c.ID).Msg("client disconnected")
}

// CreateResult is the acknowledgement for a successful room creation.
type CreateResult struct {
	RoomID string
	Color  Color
	FEN    string
}

// CreateRoom allocates a room and seats the creator as white.
func (h *Hub) CreateRoom(c *Client) (*CreateResult, *CoreError) {
	if h.occupied(c.ID, "") {
		return nil, errAlreadyJoined
	}

	room := h.registry.Create()
	room.mu.Lock()
	color := room.addFirstPlayer(c)
	fen := room.pos.FEN()
	room.mu.Unlock()

	h.track(c.ID, room.ID)
	h.log.Info().Str("room_id", room.ID).Str("client_id", c.ID).Msg("room created")
	return &CreateResult{RoomID: room.ID, Color: color, FEN: fen}, nil
}

// JoinResult is the acknowledgement for a successful join.
type JoinResult struct {
	Color     Color // empty when joining as spectator
	Spectator bool
	FEN       string
}

// JoinRoom seats the participant in the second seat when one is free and
// falls back to spectator when the room is full. Filling the second seat
// broadcasts the game start. Joining a room the caller is already in acks
// the existing seat without touching the roster.
func (h *Hub) JoinRoom(c *Client, roomID string) (*JoinResult, *CoreError) {
	if h.occupied(c.ID, roomID) {
		return nil, errAlreadyJoined
	}

	room, ok := h.registry.Lookup(roomID)
	if !ok {
		return nil, errRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.closed {
		return nil, errRoomNotFound
	}

	switch role := room.role(c.ID); role {
	case RoleWhite, RoleBlack:
		color, _ := role.PlayerColor()
		return &JoinResult{Color: color, FEN: room.pos.FEN()}, nil
	case RoleSpectator:
		return &JoinResult{Spectator: true, FEN: room.pos.FEN()}, nil
	}

	res := &JoinResult{FEN: room.pos.FEN()}
	if len(room.players) < 2 {
		if len(room.players) == 0 {
			res.Color = room.addFirstPlayer(c)
		} else {
			res.Color = room.addSecondPlayer(c)
		}
		if len(room.players) == 2 {
			room.broadcast(&Event{
				Kind:         EventStartGame,
				Room:         room.ID,
				FEN:          res.FEN,
				PlayersCount: 2,
			})
		}
	} else {
		room.addSpectator(c)
		res.Spectator = true
	}

	h.track(c.ID, room.ID)
	h.log.Info().
		Str("room_id", room.ID).
		Str("client_id", c.ID).
		Bool("spectator", res.Spectator).
		Msg("client joined room")
	return res, nil
}

// Move arbitrates a move intent: room, role, and turn are checked in that
// order, and only then is the engine consulted. A mismatched-turn submission
// never reaches move application.
func (h *Hub) Move(c *Client, roomID, from, to, promotion string) (*Move, *CoreError) {
	room, ok := h.registry.Lookup(roomID)
	if !ok {
		return nil, errRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.closed {
		return nil, errRoomNotFound
	}

	color, isPlayer := room.role(c.ID).PlayerColor()
	if !isPlayer {
		return nil, errNotAPlayer
	}
	if room.pos.SideToMove() != color {
		return nil, errNotYourTurn
	}

	if promotion == "" {
		promotion = PromotionDefault
	}
	res, err := room.pos.Apply(from, to, promotion)
	if err != nil {
		return nil, errIllegalMove
	}

	move := &Move{
		From:      from,
		To:        to,
		SAN:       res.SAN,
		FEN:       res.FEN,
		Checkmate: res.Checkmate,
		Draw:      res.Draw,
		Check:     res.Check,
	}
	room.broadcast(&Event{Kind: EventMoveMade, Room: room.ID, Move: move})
	h.log.Debug().
		Str("room_id", room.ID).
		Str("client_id", c.ID).
		Str("san", res.SAN).
		Bool("checkmate", res.Checkmate).
		Msg("move applied")
	return move, nil
}

// FenResult answers a position query.
type FenResult struct {
	FEN  string
	Turn Color
}

// Fen reports the authoritative position, letting a client resynchronize
// after a rejected move.
func (h *Hub) Fen(roomID string) (*FenResult, *CoreError) {
	room, ok := h.registry.Lookup(roomID)
	if !ok {
		return nil, errRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.closed {
		return nil, errRoomNotFound
	}
	return &FenResult{FEN: room.pos.FEN(), Turn: room.pos.SideToMove()}, nil
}

// LeaveRoom removes the participant from the room. Leaving a room the
// participant is not in is a no-op, so a leave racing a disconnect cannot
// fail.
func (h *Hub) LeaveRoom(c *Client, roomID string) *CoreError {
	room, ok := h.registry.Lookup(roomID)
	if !ok {
		return errRoomNotFound
	}
	h.removeFromRoom(c.ID, room)
	return nil
}

// removeFromRoom takes one participant out of one room, broadcasts the
// departure to whoever remains, and deletes the room when it empties.
func (h *Hub) removeFromRoom(id string, room *Room) {
	room.mu.Lock()
	removed, playersLeft, membersLeft := room.removeParticipant(id)
	if removed {
		if membersLeft == 0 {
			// closed blocks joins racing the registry delete below.
			room.closed = true
		} else {
			room.broadcast(&Event{
				Kind:         EventPlayerLeft,
				Room:         room.ID,
				PlayersCount: playersLeft,
			})
		}
	}
	closed := room.closed
	room.mu.Unlock()

	if !removed {
		return
	}
	h.untrack(id, room.ID)
	if closed {
		h.registry.Delete(room.ID)
		h.log.Info().Str("room_id", room.ID).Msg("room deleted")
	}
	h.log.Info().Str("room_id", room.ID).Str("client_id", id).Msg("client left room")
}

// occupied reports whether the participant is in any room other than exempt.
func (h *Hub) occupied(id, exempt string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for roomID := range h.occupancy[id] {
		if roomID != exempt {
			return true
		}
	}
	return false
}

func (h *Hub) track(id, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.occupancy[id]
	if !ok {
		set = make(map[string]struct{})
		h.occupancy[id] = set
	}
	set[roomID] = struct{}{}
}

func (h *Hub) untrack(id, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.occupancy[id]; ok {
		delete(set, roomID)
		if len(set) == 0 {
			delete(h.occupancy, id)
		}
	}
}
