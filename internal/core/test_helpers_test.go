package core

import (
	"strconv"
	"testing"
	"time"
)

// fakePosition is a scripted engine stand-in: it alternates the turn on
// every applied move and rejects anything moving from square "bad". Hub
// tests exercise arbitration with it; real chess behavior is covered by the
// engine package tests.
type fakePosition struct {
	turn       Color
	applied    []string
	promotions []string
	mateAfter  int // report checkmate on the n-th applied move; 0 = never
}

func newFakePosition() *fakePosition {
	return &fakePosition{turn: White}
}

func (p *fakePosition) Apply(from, to, promotion string) (MoveResult, error) {
	if from == "bad" {
		return MoveResult{}, ErrIllegalMove
	}
	p.applied = append(p.applied, from+to)
	p.promotions = append(p.promotions, promotion)
	p.turn = p.turn.Other()
	return MoveResult{
		SAN:       from + to,
		FEN:       p.FEN(),
		Checkmate: p.mateAfter > 0 && len(p.applied) == p.mateAfter,
	}, nil
}

func (p *fakePosition) SideToMove() Color {
	return p.turn
}

func (p *fakePosition) FEN() string {
	return "fen-" + strconv.Itoa(len(p.applied))
}

func newTestHub() *Hub {
	return NewHub(func() Position { return newFakePosition() }, nil)
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// mustNoEvent asserts the channel is quiet. Hub intents are synchronous, so
// any broadcast they produced is already buffered by the time they return.
func mustNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	default:
	}
}
