package server

import (
	"net/http"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

const namespace = "bot_chat"

// otherCommand labels every frame whose command is not a client STOMP command.
const otherCommand = "OTHER"

var clientCommands = []string{
	frame.CONNECT, frame.STOMP, frame.SEND, frame.SUBSCRIBE, frame.UNSUBSCRIBE,
	frame.ACK, frame.NACK, frame.BEGIN, frame.COMMIT, frame.ABORT, frame.DISCONNECT,
}

// Metrics are registered on their own registry so several servers can live in one process.
type Metrics struct {
	registry       *prometheus.Registry
	Connections    prometheus.Gauge
	Frames         *prometheus.CounterVec
	UserMessages   prometheus.Counter
	Replies        prometheus.Counter
	ProtocolErrors prometheus.Counter
	Censored       prometheus.Counter
	FlowUploads    *prometheus.CounterVec
	WorkerRestarts *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "connections",
			Help: "Open STOMP sessions.",
		}),
		Frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "frames_received_total",
			Help: "Client frames received, by command.",
		}, []string{"command"}),
		UserMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "user_messages_total",
			Help: "Messages received on the user destination.",
		}),
		Replies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "replies_total",
			Help: "Bot replies pushed to clients.",
		}),
		ProtocolErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "protocol_errors_total",
			Help: "Sessions closed with an ERROR frame.",
		}),
		Censored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "censored_messages_total",
			Help: "User messages altered by moderation.",
		}),
		FlowUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "flow_uploads_total",
			Help: "Flow uploads, by status.",
		}, []string{"status"}),
		WorkerRestarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "worker_restarts_total",
			Help: "Supervised workers restarted after a crash, by worker.",
		}, []string{"worker"}),
	}
	m.registry.MustRegister(
		m.Connections, m.Frames, m.UserMessages, m.Replies,
		m.ProtocolErrors, m.Censored, m.FlowUploads, m.WorkerRestarts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// FrameReceived counts a client frame. The label set stays bounded whatever the client sends.
func (m *Metrics) FrameReceived(command string) {
	if !lo.Contains(clientCommands, command) {
		command = otherCommand
	}
	m.Frames.WithLabelValues(command).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
