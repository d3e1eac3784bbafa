package storage

import (
	"encoding/json"

	"vozurbana/backend/internal/models"
)

// FeedChannel is the Redis Pub/Sub channel carrying new-report events to
// every running instance.
const FeedChannel = "denuncias:feed"

// PublishFeedEvent fans a new-report event out over Redis Pub/Sub. A nil
// Redis client makes this a no-op so CLI tools and tests can skip it.
func (s *Service) PublishFeedEvent(ev models.FeedEvent) error {
	if s.Redis == nil {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, FeedChannel, payload).Err()
}
