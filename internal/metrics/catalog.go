package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Catalog query Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glassdex",
			Name:      "queries_total",
			Help:      "Total number of catalog queries",
		},
		[]string{"mode", "status"},
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "glassdex",
			Name:      "query_duration_seconds",
			Help:      "Catalog query duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"mode"},
	)

	QueryResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "glassdex",
			Name:      "query_results",
			Help:      "Number of matching items per query before pagination",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"mode"},
	)

	ParallelScansTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "glassdex",
			Name:      "parallel_scans_total",
			Help:      "Catalog scans split into chunks on the worker pool",
		},
	)

	CatalogItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "glassdex",
			Name:      "catalog_items",
			Help:      "Items in the loaded catalog snapshot",
		},
	)

	CatalogSkippedItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "glassdex",
			Name:      "catalog_skipped_items",
			Help:      "Export entries dropped as invalid or duplicate on the last load",
		},
	)

	CatalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glassdex",
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts",
		},
		[]string{"status"}, // "ok" / "error"
	)

	EnabledManufacturers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "glassdex",
			Name:      "enabled_manufacturers",
			Help:      "Manufacturers currently enabled",
		},
	)
)

var registerCatalogOnce sync.Once

// RegisterCatalogMetrics registers catalog metrics with the default registry.
// Safe to call more than once.
func RegisterCatalogMetrics() {
	registerCatalogOnce.Do(func() {
		prometheus.MustRegister(
			QueriesTotal,
			QueryDuration,
			QueryResults,
			ParallelScansTotal,
			CatalogItems,
			CatalogSkippedItems,
			CatalogReloadsTotal,
			EnabledManufacturers,
		)
	})
}
