package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	ws "notification-client/internal/websocket"
)

// Metrics are the push-channel collectors.
type Metrics struct {
	attempts       prometheus.Counter
	disconnects    prometheus.Counter
	messages       *prometheus.CounterVec
	decodeFailures prometheus.Counter
	state          prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		attempts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "notification_client",
			Subsystem: "push",
			Name:      "connect_attempts_total",
			Help:      "Dial attempts to the push broker.",
		}),
		disconnects: f.NewCounter(prometheus.CounterOpts{
			Namespace: "notification_client",
			Subsystem: "push",
			Name:      "disconnects_total",
			Help:      "Established connections that were lost.",
		}),
		messages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notification_client",
			Subsystem: "push",
			Name:      "messages_total",
			Help:      "Push messages delivered, by channel kind.",
		}, []string{"kind"}),
		decodeFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "notification_client",
			Subsystem: "push",
			Name:      "decode_failures_total",
			Help:      "Push messages dropped because they did not decode.",
		}),
		state: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "notification_client",
			Subsystem: "push",
			Name:      "state",
			Help:      "Current connection state (0 idle, 1 connecting, 2 connected, 3 disconnected, 4 closed).",
		}),
	}
}

func (m *Metrics) observeState(s ws.State) {
	m.state.Set(float64(s))
}
