package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chat"

const (
	PushDelivered = "delivered"
	PushOffline   = "offline"
	PushFailed    = "failed"

	EventPublished = "published"
	EventFailed    = "failed"
)

// Metrics is safe to use through a nil pointer; every recorder becomes a no-op.
type Metrics struct {
	MessagesSent    *prometheus.CounterVec
	Pushes          *prometheus.CounterVec
	LiveChannels    prometheus.Gauge
	EventsPublished *prometheus.CounterVec
	RateLimited     *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		MessagesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Messages durably stored, by type.",
		}, []string{"type"}),
		Pushes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pushes_total",
			Help:      "Live push attempts, by outcome.",
		}, []string{"outcome"}),
		LiveChannels: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_channels",
			Help:      "Users with an open live channel on this instance.",
		}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "message.created events handed to the broker, by outcome.",
		}, []string{"outcome"}),
		RateLimited: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Sends rejected by a rate limiter, by surface.",
		}, []string{"surface"}),
		gatherer: reg,
	}
}

func (m *Metrics) MessageSent(messageType string) {
	if m == nil {
		return
	}
	m.MessagesSent.WithLabelValues(messageType).Inc()
}

func (m *Metrics) Push(outcome string) {
	if m == nil {
		return
	}
	m.Pushes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ChannelOpened() {
	if m == nil {
		return
	}
	m.LiveChannels.Inc()
}

func (m *Metrics) ChannelClosed() {
	if m == nil {
		return
	}
	m.LiveChannels.Dec()
}

func (m *Metrics) Event(outcome string) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Limited(surface string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(surface).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
