package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"
	"marketplace-chat/dto"
	"marketplace-chat/enum"
	"marketplace-chat/metrics"
)

type fakeWriter struct {
	mu      sync.Mutex
	written []kafka.Message
	calls   int
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w Writer) (*Publisher, *metrics.Metrics) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := metrics.New(prometheus.NewRegistry())
	return NewPublisher(w, m, log), m
}

func TestPublisher_PublishMessageCreated(t *testing.T) {
	writer := &fakeWriter{}
	publisher, m := newTestPublisher(writer)
	event := dto.MessageCreatedEvent{
		MessageID:       42,
		ConversationKey: dto.ConversationKey("bob", "alice"),
		SenderID:        "bob",
		ReceiverID:      "alice",
		Content:         "hi",
		Type:            enum.MessageTypeText,
		SendTime:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishMessageCreated(context.Background(), event))

	require.Len(t, writer.written, 1)
	msg := writer.written[0]
	require.Equal(t, "alice:bob", string(msg.Key))
	require.Equal(t, EventMessageCreated, string(msg.Headers[0].Value))

	var decoded dto.MessageCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, event, decoded)
	require.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(metrics.EventPublished)))

	require.NoError(t, publisher.Close())
	require.True(t, writer.closed)
}

func TestPublisher_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	writer := &fakeWriter{err: errors.New("no brokers")}
	publisher, m := newTestPublisher(writer)
	ctx := context.Background()

	for i := 0; i < breakerMaxFailures; i++ {
		require.Error(t, publisher.PublishMessageCreated(ctx, dto.MessageCreatedEvent{MessageID: uint64(i)}))
	}
	require.Equal(t, breakerMaxFailures, writer.calls)

	err := publisher.PublishMessageCreated(ctx, dto.MessageCreatedEvent{MessageID: 99})
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.Equal(t, breakerMaxFailures, writer.calls)
	require.Equal(t, float64(breakerMaxFailures+1), testutil.ToFloat64(m.EventsPublished.WithLabelValues(metrics.EventFailed)))
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "chat.message.created")
	require.Equal(t, "chat.message.created", w.Topic)
	require.IsType(t, &kafka.Hash{}, w.Balancer)
	require.NoError(t, w.Close())
}
