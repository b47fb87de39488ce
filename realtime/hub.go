package realtime

import (
	"context"
	"hash/fnv"
	"sync"

	"marketplace-chat/config/logger"
	"marketplace-chat/metrics"
)

const (
	shardCount        = 32
	maxPresenceWrites = 3
)

// PresenceTracker is told when a user's live channel opens and closes.
type PresenceTracker interface {
	MarkOnline(ctx context.Context, userID string) error
	MarkOffline(ctx context.Context, userID string) error
}

type shard struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// Hub maps user ids to their single live client. Users are spread over shards so
// connects and pushes for unrelated users do not contend on one lock.
type Hub struct {
	shards   [shardCount]shard
	presence PresenceTracker
	metrics  *metrics.Metrics
	log      *logger.AppLogger
}

// NewHub accepts a nil presence tracker.
func NewHub(presence PresenceTracker, m *metrics.Metrics, log *logger.AppLogger) *Hub {
	h := &Hub{presence: presence, metrics: m, log: log}
	for i := range h.shards {
		h.shards[i].clients = make(map[string]*Client)
	}
	return h
}

func (h *Hub) shardFor(userID string) *shard {
	f := fnv.New32a()
	_, _ = f.Write([]byte(userID))
	return &h.shards[f.Sum32()%shardCount]
}

// Register makes client the user's live channel. An older session of the same user is closed.
func (h *Hub) Register(ctx context.Context, client *Client) {
	s := h.shardFor(client.UserID)
	s.mu.Lock()
	previous := s.clients[client.UserID]
	s.clients[client.UserID] = client
	s.mu.Unlock()

	if previous != nil && previous != client {
		previous.Close()
		h.log.WS.Info.Info().
			Str("userId", client.UserID).
			Str("replaced", previous.SessionID).
			Str("session", client.SessionID).
			Msg("live channel replaced")
	} else {
		h.metrics.ChannelOpened()
		h.log.WS.Info.Info().Str("userId", client.UserID).Str("session", client.SessionID).Msg("live channel opened")
	}

	h.syncPresence(ctx, client.UserID, true)
}

// Unregister closes client and removes it unless a newer session has taken its place.
func (h *Hub) Unregister(ctx context.Context, client *Client) {
	s := h.shardFor(client.UserID)
	s.mu.Lock()
	current, ok := s.clients[client.UserID]
	removed := ok && current == client
	if removed {
		delete(s.clients, client.UserID)
	}
	s.mu.Unlock()

	client.Close()
	if !removed {
		return
	}

	h.metrics.ChannelClosed()
	h.log.WS.Info.Info().Str("userId", client.UserID).Str("session", client.SessionID).Msg("live channel closed")
	h.syncPresence(ctx, client.UserID, false)
}

// syncPresence writes the flag, then re-reads the registry and writes again when a racing
// register or unregister of the same user changed the answer.
func (h *Hub) syncPresence(ctx context.Context, userID string, online bool) {
	if h.presence == nil {
		return
	}
	for attempt := 0; attempt < maxPresenceWrites; attempt++ {
		var err error
		if online {
			err = h.presence.MarkOnline(ctx, userID)
		} else {
			err = h.presence.MarkOffline(ctx, userID)
		}
		if err != nil {
			h.log.WS.Warning.Warn().Err(err).Str("userId", userID).Bool("online", online).Msg("failed to write presence")
			return
		}

		_, live := h.Lookup(userID)
		if live == online {
			return
		}
		online = live
	}
}

func (h *Hub) Lookup(userID string) (Channel, bool) {
	s := h.shardFor(userID)
	s.mu.RLock()
	client, ok := s.clients[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return client, true
}

func (h *Hub) Count() int {
	total := 0
	for i := range h.shards {
		s := &h.shards[i]
		s.mu.RLock()
		total += len(s.clients)
		s.mu.RUnlock()
	}
	return total
}

// CloseAll closes every live client; their handlers unregister them as they exit.
func (h *Hub) CloseAll() {
	for i := range h.shards {
		s := &h.shards[i]
		s.mu.RLock()
		for _, client := range s.clients {
			client.Close()
		}
		s.mu.RUnlock()
	}
}
