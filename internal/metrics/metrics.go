// Package metrics declares the Prometheus collectors of the landing site.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageRenders counts rendered pages, split by whether the view was fresh.
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tailtales_page_renders_total",
		Help: "Total number of rendered landing pages",
	}, []string{"view"})

	MenuToggles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tailtales_menu_toggles_total",
		Help: "Total number of mobile menu toggles",
	})

	NavActivations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tailtales_nav_activations_total",
		Help: "Total number of nav links activated with the mobile menu open",
	}, []string{"section"})

	// Signups counts form submissions by result (accepted, ignored).
	Signups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tailtales_signups_total",
		Help: "Total number of early access form submissions",
	}, []string{"result"})

	ViewsPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tailtales_views_pruned_total",
		Help: "Total number of idle page views removed",
	})
)
