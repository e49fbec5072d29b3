package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(cleanupDeletedTotal) }

var cleanupDeletedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cleanup_rows_deleted_total",
		Help: "Rows removed by the retention cleanup job, by entity.",
	},
	[]string{"entity"}, // 'session', 'recommendation'
)

func AddCleanupDeleted(entity string, n int64) {
	cleanupDeletedTotal.WithLabelValues(norm(entity)).Add(float64(n))
}
