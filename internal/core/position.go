package core

// Color identifies one of the two move-privileged seats. The wire values
// match what clients render ("w" and "b").
type Color string

const (
	White Color = "w"
	Black Color = "b"
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// MoveResult describes a move the position engine accepted and applied.
type MoveResult struct {
	SAN       string
	FEN       string
	Checkmate bool
	Draw      bool
	Check     bool
}

// Position is the board-state collaborator owned by a room. Implementations
// validate candidate moves against the full rules of the game, mutate the
// position on success, and report terminal conditions. Implementations are
// not safe for concurrent use; the owning room serializes access.
type Position interface {
	// Apply validates from/to/promotion against the current position and
	// plays the matching legal move. A move that matches no legal move
	// returns ErrIllegalMove and leaves the position unchanged.
	Apply(from, to, promotion string) (MoveResult, error)
	// SideToMove reports whose turn it is.
	SideToMove() Color
	// FEN serializes the position in its canonical wire representation.
	FEN() string
}
