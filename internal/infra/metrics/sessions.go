package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(sessionsStartedTotal, messagesProcessedTotal, recommendationsTotal)
}

var (
	sessionsStartedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coaching_sessions_started_total",
			Help: "Coaching sessions started, by session type.",
		},
		[]string{"type"},
	)

	messagesProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coaching_messages_processed_total",
			Help: "Student messages processed, by reply source.",
		},
		[]string{"source"}, // 'completion', 'fallback'
	)

	recommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coaching_recommendations_total",
			Help: "Recommendations created, by trigger type.",
		},
		[]string{"type"},
	)
)

func IncSessionStarted(sessionType string) {
	sessionsStartedTotal.WithLabelValues(norm(sessionType)).Inc()
}

func IncMessageProcessed(source string) {
	messagesProcessedTotal.WithLabelValues(norm(source)).Inc()
}

func IncRecommendation(recType string) {
	recommendationsTotal.WithLabelValues(norm(recType)).Inc()
}
