package core

import (
	"strconv"
	"testing"
)

func benchmarkMoveBroadcast(b *testing.B, spectators int) {
	hub := newTestHub()

	white := NewClient("white")
	black := NewClient("black")
	created, _ := hub.CreateRoom(white)
	hub.JoinRoom(black, created.RoomID)

	watchers := make([]*Client, 0, spectators)
	for i := 0; i < spectators; i++ {
		c := NewClient("s" + strconv.Itoa(i))
		hub.JoinRoom(c, created.RoomID)
		watchers = append(watchers, c)
	}

	// Drain events for all but one member to avoid channel backpressure.
	members := append([]*Client{white, black}, watchers...)
	target := members[len(members)-1]
	for _, c := range members {
		if c != target {
			go func(cl *Client) {
				for range cl.Events {
				}
			}(c)
		}
	}

	players := [2]*Client{white, black}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, cerr := hub.Move(players[i%2], created.RoomID, "e2", "e4", ""); cerr != nil {
			b.Fatalf("move rejected: %v", cerr)
		}
		for ev := range target.Events {
			if ev.Kind == EventMoveMade {
				break
			}
		}
	}
}

func BenchmarkMoveBroadcast_2(b *testing.B)   { benchmarkMoveBroadcast(b, 0) }
func BenchmarkMoveBroadcast_10(b *testing.B)  { benchmarkMoveBroadcast(b, 10) }
func BenchmarkMoveBroadcast_100(b *testing.B) { benchmarkMoveBroadcast(b, 100) }
