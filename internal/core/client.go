package core

// Client is one connected participant as seen by the coordinator. The
// transport owns the connection lifetime; the coordinator only records
// membership and pushes events into the buffered channel.
type Client struct {
	ID     string
	Events chan *Event
}

// NewClient constructs a client with an initialized event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 8),
	}
}
