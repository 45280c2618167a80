package core

// Role is the membership status of a participant within a room. Modeling it
// as an explicit enum keeps the move gate exhaustive: only the two player
// roles ever reach the position engine.
type Role int

const (
	// RoleNone marks a participant with no membership in the room.
	RoleNone Role = iota
	// RoleWhite is the first seat, assigned to the room creator.
	RoleWhite
	// RoleBlack is the second seat, assigned to the second entrant.
	RoleBlack
	// RoleSpectator receives broadcasts but has no move rights.
	RoleSpectator
)

// IsPlayer reports whether the role holds one of the two seats.
func (r Role) IsPlayer() bool {
	return r == RoleWhite || r == RoleBlack
}

// PlayerColor returns the seat color for player roles.
func (r Role) PlayerColor() (Color, bool) {
	switch r {
	case RoleWhite:
		return White, true
	case RoleBlack:
		return Black, true
	default:
		return "", false
	}
}

func roleFor(c Color) Role {
	if c == White {
		return RoleWhite
	}
	return RoleBlack
}
