package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Presence is what other users may learn about a user's live channel.
type Presence struct {
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"lastSeen"`
}

// PresenceStore keeps presence in redis under <prefix>:presence:<userId> so every instance sees it.
type PresenceStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewPresenceStore(client *redis.Client, prefix string, ttl time.Duration) *PresenceStore {
	return &PresenceStore{client: client, prefix: prefix, ttl: ttl, now: time.Now}
}

func (s *PresenceStore) key(userID string) string {
	return fmt.Sprintf("%s:presence:%s", s.prefix, userID)
}

func (s *PresenceStore) MarkOnline(ctx context.Context, userID string) error {
	return s.set(ctx, userID, true)
}

func (s *PresenceStore) MarkOffline(ctx context.Context, userID string) error {
	return s.set(ctx, userID, false)
}

func (s *PresenceStore) set(ctx context.Context, userID string, online bool) error {
	payload, err := json.Marshal(Presence{Online: online, LastSeen: s.now().UTC()})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(userID), payload, s.ttl).Err()
}

// Get reports a user that was never seen, or whose entry expired, as offline with a zero LastSeen.
func (s *PresenceStore) Get(ctx context.Context, userID string) (Presence, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Presence{}, nil
	}
	if err != nil {
		return Presence{}, err
	}

	var presence Presence
	if err := json.Unmarshal(raw, &presence); err != nil {
		return Presence{}, fmt.Errorf("decode presence for %s: %w", userID, err)
	}
	return presence, nil
}
