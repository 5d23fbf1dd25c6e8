package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "visitstats"
)

var (
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "query", "duration_seconds"),
		Help:    "Duration of aggregate queries in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
	}, []string{"query", "engine"})
	QueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "query", "errors_total"),
		Help: "Aggregate queries that returned an error",
	}, []string{"query", "engine"})
	DashboardBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "dashboard", "build_duration_seconds"),
		Help:    "Duration of building a whole dashboard in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	})
	DatasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "dataset", "rows"),
		Help: "Number of visits loaded from the CSV source at startup",
	})
)
