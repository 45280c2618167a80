package core

import "testing"

func TestRoomSeatOrderAssignsColors(t *testing.T) {
	room := newRoom("r1", newFakePosition())
	alice := NewClient("a")
	bob := NewClient("b")

	if c := room.addFirstPlayer(alice); c != White {
		t.Fatalf("first entrant color = %q, want white", c)
	}
	if c := room.addSecondPlayer(bob); c != Black {
		t.Fatalf("second entrant color = %q, want black", c)
	}
	if room.role("a") != RoleWhite || room.role("b") != RoleBlack {
		t.Fatalf("roles out of order: a=%v b=%v", room.role("a"), room.role("b"))
	}
	if room.role("ghost") != RoleNone {
		t.Fatal("non-member resolved to a role")
	}
}

func TestRoomSecondSeatTakesMissingColor(t *testing.T) {
	room := newRoom("r1", newFakePosition())
	room.addFirstPlayer(NewClient("a"))
	room.addSecondPlayer(NewClient("b"))

	room.removeParticipant("a")
	if c := room.addSecondPlayer(NewClient("c")); c != White {
		t.Fatalf("refilled seat color = %q, want white", c)
	}
	if room.roles["b"] != Black || room.roles["c"] != White {
		t.Fatalf("seats out of balance: %v", room.roles)
	}
}

func TestRoomSpectatorHasNoSeat(t *testing.T) {
	room := newRoom("r1", newFakePosition())
	room.addSpectator(NewClient("s"))

	role := room.role("s")
	if role != RoleSpectator {
		t.Fatalf("spectator role = %v", role)
	}
	if role.IsPlayer() {
		t.Fatal("spectator counts as player")
	}
	if _, ok := role.PlayerColor(); ok {
		t.Fatal("spectator has a color")
	}
	if len(room.players) != 0 || len(room.roles) != 0 {
		t.Fatalf("spectator leaked into seats: %v %v", room.players, room.roles)
	}
}

func TestRoomRemoveParticipantIsIdempotent(t *testing.T) {
	room := newRoom("r1", newFakePosition())
	room.addFirstPlayer(NewClient("a"))
	room.addSecondPlayer(NewClient("b"))
	room.addSpectator(NewClient("s"))

	removed, players, members := room.removeParticipant("a")
	if !removed || players != 1 || members != 2 {
		t.Fatalf("first removal: removed=%v players=%d members=%d", removed, players, members)
	}
	if _, ok := room.roles["a"]; ok {
		t.Fatal("role entry survived seat removal")
	}

	removed, players, members = room.removeParticipant("a")
	if removed || players != 1 || members != 2 {
		t.Fatalf("second removal not a no-op: removed=%v players=%d members=%d", removed, players, members)
	}

	room.removeParticipant("b")
	if _, _, members := room.removeParticipant("s"); members != 0 {
		t.Fatalf("room not empty after all departures: %d members", members)
	}
}

func TestRoomBroadcastSkipsSlowConsumers(t *testing.T) {
	room := newRoom("r1", newFakePosition())
	fast := NewClient("fast")
	slow := &Client{ID: "slow", Events: make(chan *Event)} // unbuffered, nobody reading
	room.addFirstPlayer(fast)
	room.addSecondPlayer(slow)

	// Must return even though the slow member can never accept the send.
	room.broadcast(&Event{Kind: EventStartGame, Room: room.ID, PlayersCount: 2})

	if ev := mustEvent(t, fast.Events, EventStartGame); ev.Room != "r1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
