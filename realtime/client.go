package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

var ErrChannelClosed = errors.New("live channel closed")

// Channel is a live destination for one user.
type Channel interface {
	Send(ctx context.Context, payload any) error
}

// Registry finds the live channel of a user, if any.
type Registry interface {
	Lookup(userID string) (Channel, bool)
}

// Conn is the part of a websocket connection the write pump needs.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
}

// Client is one websocket session. The send queue is bounded and never closed; done signals shutdown.
type Client struct {
	SessionID string
	UserID    string

	send      chan any
	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(userID, sessionID string, sendQueueSize int) *Client {
	if sendQueueSize <= 0 {
		sendQueueSize = 64
	}
	return &Client{
		SessionID: sessionID,
		UserID:    userID,
		send:      make(chan any, sendQueueSize),
		done:      make(chan struct{}),
	}
}

// Send queues payload for the write pump, waiting at most until ctx is done.
func (c *Client) Send(ctx context.Context, payload any) error {
	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close is idempotent.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// WritePump is the only writer on conn. It returns when the client is closed or a write fails,
// and the client is closed in both cases.
func (c *Client) WritePump(conn Conn, pingInterval, writeDeadline time.Duration) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer c.Close()

	for {
		select {
		case <-c.done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return nil
		case payload := <-c.send:
			if err := conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
				return err
			}
			if err := conn.WriteJSON(payload); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
				return err
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}
