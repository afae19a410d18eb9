// Package metrics defines the site's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MenuTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thingswemake_menu_transitions_total",
		Help: "Menu state changes by what caused them",
	}, []string{"trigger"})

	Searches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thingswemake_searches_total",
		Help: "Search form submissions, split into real queries and empty ones",
	}, []string{"outcome"})

	LiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "thingswemake_live_sessions",
		Help: "Open live websocket sessions",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thingswemake_http_requests_total",
		Help: "HTTP requests by route pattern and status code",
	}, []string{"route", "status"})
)

// ObserveSearch records a search submission by its destination path.
func ObserveSearch(path string) {
	outcome := "query"
	if path == "/" {
		outcome = "empty"
	}
	Searches.WithLabelValues(outcome).Inc()
}
