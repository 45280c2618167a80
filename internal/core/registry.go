package core

import (
	"sync"

	"chessroom/internal/utils"
)

const roomIDLength = 6

// Registry owns the process-wide set of rooms. The lock covers only the map;
// room-internal work happens under each room's own mutex.
type Registry struct {
	mu          sync.RWMutex
	rooms       map[string]*Room
	newPosition func() Position
}

// NewRegistry builds an empty registry. newPosition produces a fresh engine
// at the starting layout for every created room.
func NewRegistry(newPosition func() Position) *Registry {
	return &Registry{
		rooms:       make(map[string]*Room),
		newPosition: newPosition,
	}
}

// Create allocates a room under a fresh unique id. Generation retries on the
// unlikely collision instead of overwriting; the id is only handed out after
// the room is stored, so a lookup racing a create cannot see a half-made room.
func (reg *Registry) Create() *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for {
		id := utils.NewRoomCode(roomIDLength)
		if _, taken := reg.rooms[id]; taken {
			continue
		}
		room := newRoom(id, reg.newPosition())
		reg.rooms[id] = room
		return room
	}
}

// Lookup resolves a room by id.
func (reg *Registry) Lookup(id string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[id]
	return room, ok
}

// Delete removes a room. Deleting an unknown id is a no-op.
func (reg *Registry) Delete(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, id)
}
