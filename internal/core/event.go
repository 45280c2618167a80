package core

// EventKind is a notification the coordinator emits to room members.
type EventKind int

const (
	// EventStartGame notifies members that the second seat was filled.
	EventStartGame EventKind = iota
	// EventMoveMade notifies members about an accepted move.
	EventMoveMade
	// EventPlayerLeft notifies members that a participant departed.
	EventPlayerLeft
)

// Move carries the data of an accepted move for broadcast.
type Move struct {
	From      string
	To        string
	SAN       string
	FEN       string
	Checkmate bool
	Draw      bool
	Check     bool
}

// Event is delivered to every current member of a room when its state
// changes. Acknowledgements to the requester travel separately, on the
// coordinator's return path.
type Event struct {
	Kind         EventKind
	Room         string
	FEN          string
	PlayersCount int
	Move         *Move // non-nil for EventMoveMade
}
