package core

import "sync"

// Room is one game's isolated state: the position, the two seats, and the
// spectators watching it. All fields behind mu are touched only while it is
// held; the mutex is per room, so intents on different rooms never contend.
type Room struct {
	ID string

	mu         sync.Mutex
	pos        Position
	players    []string // join order: first entrant is white, second black
	roles      map[string]Color
	spectators map[string]struct{}
	members    map[string]*Client
	closed     bool
}

func newRoom(id string, pos Position) *Room {
	return &Room{
		ID:         id,
		pos:        pos,
		roles:      make(map[string]Color),
		spectators: make(map[string]struct{}),
		members:    make(map[string]*Client),
	}
}

// role reports the participant's membership status.
func (r *Room) role(id string) Role {
	if c, ok := r.roles[id]; ok {
		return roleFor(c)
	}
	if _, ok := r.spectators[id]; ok {
		return RoleSpectator
	}
	return RoleNone
}

// addFirstPlayer seats the participant as white. Only valid on an empty
// seat list.
func (r *Room) addFirstPlayer(c *Client) Color {
	r.players = append(r.players, c.ID)
	r.roles[c.ID] = White
	r.members[c.ID] = c
	return White
}

// addSecondPlayer seats the participant in the remaining seat: whichever
// color the sitting player does not hold, so a seat vacated mid-game is
// refilled with its original color. Only valid when exactly one seat is
// taken and the participant is not already a member.
func (r *Room) addSecondPlayer(c *Client) Color {
	color := r.roles[r.players[0]].Other()
	r.players = append(r.players, c.ID)
	r.roles[c.ID] = color
	r.members[c.ID] = c
	return color
}

// addSpectator grants broadcast access without move rights.
func (r *Room) addSpectator(c *Client) {
	r.spectators[c.ID] = struct{}{}
	r.members[c.ID] = c
}

// removeParticipant takes the participant out of whichever roster holds it.
// Seat and role entries are dropped together. Safe to call twice: an
// explicit leave and an implicit disconnect may race.
func (r *Room) removeParticipant(id string) (removed bool, players, members int) {
	if _, ok := r.members[id]; !ok {
		return false, len(r.players), len(r.members)
	}
	for i, p := range r.players {
		if p == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}
	delete(r.roles, id)
	delete(r.spectators, id)
	delete(r.members, id)
	return true, len(r.players), len(r.members)
}

// broadcast sends an event to all members of the room without blocking.
func (r *Room) broadcast(event *Event) {
	for _, client := range r.members {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}
