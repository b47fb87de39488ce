package realtime

import (
	"context"
	"time"

	"marketplace-chat/config/logger"
	"marketplace-chat/dto/res"
	"marketplace-chat/metrics"
)

const DefaultPushTimeout = 2 * time.Second

// Dispatcher pushes stored messages to live channels. Losing a push is fine: the
// recipient reads the message from history.
type Dispatcher struct {
	registry Registry
	timeout  time.Duration
	metrics  *metrics.Metrics
	log      *logger.AppLogger
}

func NewDispatcher(registry Registry, timeout time.Duration, m *metrics.Metrics, log *logger.AppLogger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultPushTimeout
	}
	return &Dispatcher{registry: registry, timeout: timeout, metrics: m, log: log}
}

func (d *Dispatcher) Push(ctx context.Context, recipientID string, message res.MessageResponse) {
	channel, ok := d.registry.Lookup(recipientID)
	if !ok {
		d.metrics.Push(metrics.PushOffline)
		d.log.WS.Trace.Trace().Str("userId", recipientID).Uint64("messageId", message.ID).Msg("recipient offline, push skipped")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := channel.Send(ctx, message); err != nil {
		d.metrics.Push(metrics.PushFailed)
		d.log.WS.Warning.Warn().Err(err).Str("userId", recipientID).Uint64("messageId", message.ID).Msg("push dropped")
		return
	}
	d.metrics.Push(metrics.PushDelivered)
}
