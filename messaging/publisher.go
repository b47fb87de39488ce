package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"marketplace-chat/dto"
	"marketplace-chat/metrics"
)

const (
	EventMessageCreated = "message.created"

	publishTimeout      = 5 * time.Second
	breakerMaxFailures  = 5
	breakerOpenDuration = 30 * time.Second
)

// Writer is satisfied by *kafka.Writer.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter hashes on the message key so one conversation always lands on one partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// Publisher emits domain events. A breaker stops hammering the broker while it is down;
// events raised while the breaker is open are dropped and counted.
type Publisher struct {
	writer  Writer
	cb      *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
	log     *logrus.Logger
}

func NewPublisher(writer Writer, m *metrics.Metrics, log *logrus.Logger) *Publisher {
	settings := gobreaker.Settings{
		Name:        "kafka-message-events",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     breakerOpenDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerMaxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("circuit breaker %s: %s -> %s", name, from.String(), to.String())
		},
	}
	return &Publisher{
		writer:  writer,
		cb:      gobreaker.NewCircuitBreaker(settings),
		metrics: m,
		log:     log,
	}
}

func (p *Publisher) PublishMessageCreated(ctx context.Context, event dto.MessageCreatedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", EventMessageCreated, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	_, err = p.cb.Execute(func() (interface{}, error) {
		return nil, p.writer.WriteMessages(ctx, kafka.Message{
			Key:     []byte(event.ConversationKey),
			Value:   value,
			Time:    event.SendTime,
			Headers: []kafka.Header{{Key: "event", Value: []byte(EventMessageCreated)}},
		})
	})
	if err != nil {
		p.metrics.Event(metrics.EventFailed)
		return fmt.Errorf("publish %s: %w", EventMessageCreated, err)
	}

	p.metrics.Event(metrics.EventPublished)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
