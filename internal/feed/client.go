package feed

import "vozurbana/backend/internal/models"

// Client is one connected dashboard consumer. It abstracts the transport so
// the hub can manage websocket clients and test doubles uniformly.
type Client interface {
	// GetID returns the connection's unique identifier.
	GetID() string

	// GetSendChannel returns the channel the hub pushes events into.
	GetSendChannel() chan<- models.FeedEvent

	// Run starts the client's pumps.
	Run()
	// Close shuts down the client's send channel.
	Close()
}
