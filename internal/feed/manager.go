// Package feed pushes newly submitted reports to connected staff dashboards
// over websockets, with Redis Pub/Sub fanning events across instances.
package feed

import (
	"encoding/json"
	"log"

	"vozurbana/backend/internal/models"
	"vozurbana/backend/internal/storage"
)

// Manager is the hub: it owns the client set and serializes all mutations
// through its channels.
type Manager struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	BroadcastCh  chan models.FeedEvent

	Storage *storage.Service

	pubSubCh chan models.FeedEvent
}

func NewManager(s *storage.Service) *Manager {
	return &Manager{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		BroadcastCh:  make(chan models.FeedEvent),
		Storage:      s,
		pubSubCh:     make(chan models.FeedEvent),
	}
}

// StartPubSubListener subscribes to the Redis feed channel so events
// published by any instance reach this hub's clients too.
func (m *Manager) StartPubSubListener() {
	if m.Storage == nil || m.Storage.Redis == nil {
		return
	}
	go func() {
		pubsub := m.Storage.Redis.Subscribe(m.Storage.Ctx, storage.FeedChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var ev models.FeedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("feed: dropping malformed pubsub payload: %v", err)
				continue
			}
			m.pubSubCh <- ev
		}
	}()
}

// Run is the hub's main loop. It must run in its own goroutine.
func (m *Manager) Run() {
	m.StartPubSubListener()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetID()] = client

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetID()]; ok {
				delete(m.Clients, client.GetID())
				client.Close()
			}

		case ev := <-m.BroadcastCh:
			m.dispatch(ev)

		case ev := <-m.pubSubCh:
			m.dispatch(ev)
		}
	}
}

// dispatch pushes one event to every connected client. A client that cannot
// keep up is dropped rather than allowed to stall the hub.
func (m *Manager) dispatch(ev models.FeedEvent) {
	for id, client := range m.Clients {
		select {
		case client.GetSendChannel() <- ev:
		default:
			delete(m.Clients, id)
			client.Close()
		}
	}
}
