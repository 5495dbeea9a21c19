package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TerminalMetrics counts the operational events of one POS terminal.
type TerminalMetrics struct {
	registry *prometheus.Registry

	Scans            *prometheus.CounterVec
	Checkouts        *prometheus.CounterVec
	CheckoutSeconds  prometheus.Histogram
	CatalogRefreshes *prometheus.CounterVec
}

// New builds the metric set on its own registry so multiple terminals (and
// tests) can coexist in one process.
func New() *TerminalMetrics {
	scans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocerypos",
		Subsystem: "terminal",
		Name:      "scans_total",
		Help:      "Scan/search tokens processed, by result.",
	}, []string{"result"})

	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocerypos",
		Subsystem: "terminal",
		Name:      "checkouts_total",
		Help:      "Checkout submissions, by outcome.",
	}, []string{"outcome"})

	checkoutSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "grocerypos",
		Subsystem: "terminal",
		Name:      "checkout_duration_seconds",
		Help:      "Wall time of checkout submissions.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	refreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocerypos",
		Subsystem: "terminal",
		Name:      "catalog_refreshes_total",
		Help:      "Catalog cache refreshes, by outcome.",
	}, []string{"outcome"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(scans, checkouts, checkoutSeconds, refreshes)

	return &TerminalMetrics{
		registry:         registry,
		Scans:            scans,
		Checkouts:        checkouts,
		CheckoutSeconds:  checkoutSeconds,
		CatalogRefreshes: refreshes,
	}
}

// Handler serves the terminal's registry in Prometheus exposition format.
func (m *TerminalMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
