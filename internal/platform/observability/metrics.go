package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TranslationsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_translations_saved_total",
		Help: "Translation writes by language and result",
	}, []string{"language", "status"})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "content_db_pool_acquired_connections",
		Help: "Connections currently acquired from the database pool",
	})

	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "content_db_pool_total_connections",
		Help: "Total connections held by the database pool",
	})
)
