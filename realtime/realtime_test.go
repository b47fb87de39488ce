package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"marketplace-chat/config/logger"
	"marketplace-chat/dto/res"
	"marketplace-chat/metrics"
)

type fakeTracker struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeTracker) MarkOnline(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, "online:"+userID)
	return nil
}

func (f *fakeTracker) MarkOffline(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, "offline:"+userID)
	return nil
}

func newTestHub(tracker PresenceTracker) (*Hub, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	return NewHub(tracker, m, logger.NewNop()), m
}

func TestHub_RegisterLookupUnregister(t *testing.T) {
	tracker := &fakeTracker{}
	hub, m := newTestHub(tracker)
	ctx := context.Background()

	_, ok := hub.Lookup("alice")
	require.False(t, ok)

	client := NewClient("alice", "s1", 4)
	hub.Register(ctx, client)

	channel, ok := hub.Lookup("alice")
	require.True(t, ok)
	require.Same(t, client, channel)
	require.Equal(t, 1, hub.Count())
	require.Equal(t, 1.0, testutil.ToFloat64(m.LiveChannels))

	hub.Unregister(ctx, client)
	_, ok = hub.Lookup("alice")
	require.False(t, ok)
	require.Zero(t, hub.Count())
	require.Zero(t, testutil.ToFloat64(m.LiveChannels))
	require.Equal(t, []string{"online:alice", "offline:alice"}, tracker.events)

	select {
	case <-client.Done():
	default:
		t.Fatal("unregistered client should be closed")
	}
}

func TestHub_NewSessionReplacesOld(t *testing.T) {
	tracker := &fakeTracker{}
	hub, m := newTestHub(tracker)
	ctx := context.Background()

	old := NewClient("alice", "s1", 4)
	fresh := NewClient("alice", "s2", 4)
	hub.Register(ctx, old)
	hub.Register(ctx, fresh)

	select {
	case <-old.Done():
	default:
		t.Fatal("replaced client should be closed")
	}

	// the old session's handler unregistering late must not drop the new one
	hub.Unregister(ctx, old)
	channel, ok := hub.Lookup("alice")
	require.True(t, ok)
	require.Same(t, fresh, channel)
	require.Equal(t, 1.0, testutil.ToFloat64(m.LiveChannels))
	require.Equal(t, []string{"online:alice", "online:alice"}, tracker.events)
}

// slowOfflineTracker holds the first MarkOffline until release is closed.
type slowOfflineTracker struct {
	mu      sync.Mutex
	online  map[string]bool
	entered chan struct{}
	release chan struct{}
	gated   bool
}

func (s *slowOfflineTracker) MarkOnline(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online[userID] = true
	return nil
}

func (s *slowOfflineTracker) MarkOffline(_ context.Context, userID string) error {
	s.mu.Lock()
	first := !s.gated
	s.gated = true
	s.mu.Unlock()
	if first {
		close(s.entered)
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.online[userID] = false
	return nil
}

func (s *slowOfflineTracker) isOnline(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online[userID]
}

func TestHub_ReconnectDuringSlowOfflineStaysOnline(t *testing.T) {
	tracker := &slowOfflineTracker{
		online:  map[string]bool{},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	hub, _ := newTestHub(tracker)
	ctx := context.Background()

	old := NewClient("alice", "s1", 4)
	hub.Register(ctx, old)

	unregistered := make(chan struct{})
	go func() {
		defer close(unregistered)
		hub.Unregister(ctx, old)
	}()
	<-tracker.entered

	// Given the old session is still writing offline, when the user reconnects
	fresh := NewClient("alice", "s2", 4)
	hub.Register(ctx, fresh)
	require.True(t, tracker.isOnline("alice"))

	// Then the late offline write is corrected once it lands
	close(tracker.release)
	<-unregistered

	_, live := hub.Lookup("alice")
	require.True(t, live)
	require.True(t, tracker.isOnline("alice"))
}

func TestHub_DisconnectDuringSlowOnlineEndsOffline(t *testing.T) {
	tracker := &fakeTracker{}
	hub, _ := newTestHub(tracker)
	ctx := context.Background()
	client := NewClient("alice", "s1", 4)

	// registry already empty when the online write returns, as after a fast disconnect
	hub.syncPresence(ctx, client.UserID, true)

	require.Equal(t, []string{"online:alice", "offline:alice"}, tracker.events)
}

func TestHub_ConcurrentUsers(t *testing.T) {
	hub, _ := newTestHub(nil)
	ctx := context.Background()

	const users = 200
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			client := NewClient(fmt.Sprintf("user-%d", i), "s", 1)
			hub.Register(ctx, client)
			_, _ = hub.Lookup(fmt.Sprintf("user-%d", (i+1)%users))
			if i%2 == 0 {
				hub.Unregister(ctx, client)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, users/2, hub.Count())

	hub.CloseAll()
	channel, ok := hub.Lookup("user-1")
	require.True(t, ok)
	require.ErrorIs(t, channel.Send(ctx, "x"), ErrChannelClosed)
}

func TestClient_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("should queue until full then honour the deadline", func(t *testing.T) {
		client := NewClient("alice", "s1", 1)
		require.NoError(t, client.Send(ctx, "first"))

		short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, client.Send(short, "second"), context.DeadlineExceeded)
	})

	t.Run("should refuse after close", func(t *testing.T) {
		client := NewClient("alice", "s1", 1)
		client.Close()
		client.Close()
		require.ErrorIs(t, client.Send(ctx, "x"), ErrChannelClosed)
	})
}

type fakeConn struct {
	mu       sync.Mutex
	json     []any
	messages []int
	failJSON error
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failJSON != nil {
		return c.failJSON
	}
	c.json = append(c.json, v)
	return nil
}

func (c *fakeConn) WriteMessage(messageType int, _ []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, messageType)
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) snapshot() ([]any, []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.json...), append([]int(nil), c.messages...)
}

func TestClient_WritePump(t *testing.T) {
	t.Run("should write queued payloads, ping and say goodbye", func(t *testing.T) {
		client := NewClient("alice", "s1", 4)
		conn := &fakeConn{}
		require.NoError(t, client.Send(context.Background(), "hello"))

		done := make(chan error, 1)
		go func() { done <- client.WritePump(conn, 10*time.Millisecond, time.Second) }()

		require.Eventually(t, func() bool {
			written, messages := conn.snapshot()
			return len(written) == 1 && len(messages) > 0
		}, time.Second, 5*time.Millisecond)

		client.Close()
		require.NoError(t, <-done)

		written, messages := conn.snapshot()
		require.Equal(t, []any{"hello"}, written)
		require.Contains(t, messages, websocket.PingMessage)
		require.Equal(t, websocket.CloseMessage, messages[len(messages)-1])
	})

	t.Run("should close the client when a write fails", func(t *testing.T) {
		client := NewClient("alice", "s1", 4)
		broken := errors.New("broken pipe")
		require.NoError(t, client.Send(context.Background(), "hello"))

		err := client.WritePump(&fakeConn{failJSON: broken}, time.Hour, time.Second)
		require.ErrorIs(t, err, broken)
		require.ErrorIs(t, client.Send(context.Background(), "again"), ErrChannelClosed)
	})
}

func TestDispatcher_Push(t *testing.T) {
	ctx := context.Background()
	message := res.MessageResponse{ID: 9, SenderID: "alice", ReceiverID: "bob", Content: "hi"}

	t.Run("should deliver to a live channel", func(t *testing.T) {
		hub, m := newTestHub(nil)
		client := NewClient("bob", "s1", 1)
		hub.Register(ctx, client)

		NewDispatcher(hub, time.Second, m, logger.NewNop()).Push(ctx, "bob", message)

		select {
		case got := <-client.send:
			require.Equal(t, message, got)
		default:
			t.Fatal("nothing queued")
		}
		require.Equal(t, 1.0, testutil.ToFloat64(m.Pushes.WithLabelValues(metrics.PushDelivered)))
	})

	t.Run("should skip offline recipients", func(t *testing.T) {
		hub, m := newTestHub(nil)

		NewDispatcher(hub, time.Second, m, logger.NewNop()).Push(ctx, "bob", message)
		require.Equal(t, 1.0, testutil.ToFloat64(m.Pushes.WithLabelValues(metrics.PushOffline)))
	})

	t.Run("should give up on a stuck channel within the timeout", func(t *testing.T) {
		hub, m := newTestHub(nil)
		client := NewClient("bob", "s1", 1)
		hub.Register(ctx, client)
		require.NoError(t, client.Send(ctx, "filler"))

		started := time.Now()
		NewDispatcher(hub, 30*time.Millisecond, m, logger.NewNop()).Push(ctx, "bob", message)

		require.Less(t, time.Since(started), time.Second)
		require.Equal(t, 1.0, testutil.ToFloat64(m.Pushes.WithLabelValues(metrics.PushFailed)))
	})

	t.Run("should swallow a closed channel", func(t *testing.T) {
		hub, m := newTestHub(nil)
		client := NewClient("bob", "s1", 1)
		hub.Register(ctx, client)
		client.Close()

		require.NotPanics(t, func() {
			NewDispatcher(hub, time.Second, m, logger.NewNop()).Push(ctx, "bob", message)
		})
		require.Equal(t, 1.0, testutil.ToFloat64(m.Pushes.WithLabelValues(metrics.PushFailed)))
	})
}
