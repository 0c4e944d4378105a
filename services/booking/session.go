package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentorhub/models"

	"github.com/go-redis/redis/v8"
)

// sessionTTL is how long an abandoned wizard session survives. Every
// save refreshes it, so an active user never loses the draft mid-flow.
const sessionTTL = 30 * time.Minute

const sessionPrefix = "bookingSession:"

// SessionStore persists booking drafts between wizard requests.
type SessionStore interface {
	Save(ctx context.Context, draft *models.BookingDraft) error
	Get(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps drafts in Redis with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore wraps a Redis client as a SessionStore.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionPrefix+draft.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &draft, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
