// Package engine adapts github.com/notnil/chess to the core.Position
// contract: move legality, SAN, FEN serialization, and terminal-condition
// detection for one game.
package engine

import (
	"github.com/notnil/chess"

	"chessroom/internal/core"
)

// Game wraps one chess game. Not safe for concurrent use; the owning room
// serializes access.
type Game struct {
	inner *chess.Game
}

// NewGame returns a position at the standard starting layout.
func NewGame() core.Position {
	return &Game{inner: chess.NewGame()}
}

// SideToMove reports whose turn it is.
func (g *Game) SideToMove() core.Color {
	if g.inner.Position().Turn() == chess.White {
		return core.White
	}
	return core.Black
}

// FEN serializes the current position.
func (g *Game) FEN() string {
	return g.inner.Position().String()
}

// Apply plays the legal move matching from/to/promotion. The promotion piece
// is only consulted when the matching move is a promotion; the coordinator
// has already defaulted it, so it is never empty here. Anything that matches
// no legal move (bad squares, illegal geometry, a move leaving the king in
// check, any move after the game ended) comes back as ErrIllegalMove with
// the position untouched.
func (g *Game) Apply(from, to, promotion string) (core.MoveResult, error) {
	uci := from + to
	pos := g.inner.Position()

	var move *chess.Move
	for _, m := range g.inner.ValidMoves() {
		if s := m.String(); s == uci || s == uci+promotion {
			move = m
			break
		}
	}
	if move == nil {
		return core.MoveResult{}, core.ErrIllegalMove
	}

	san := chess.AlgebraicNotation{}.Encode(pos, move)
	if err := g.inner.Move(move); err != nil {
		return core.MoveResult{}, core.ErrIllegalMove
	}

	return core.MoveResult{
		SAN:       san,
		FEN:       g.FEN(),
		Checkmate: g.inner.Method() == chess.Checkmate,
		Draw:      g.inner.Outcome() == chess.Draw,
		Check:     move.HasTag(chess.Check),
	}, nil
}
