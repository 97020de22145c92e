// SPDX-License-Identifier: MIT

// Package metrics exposes edlkit's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	parseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edlkit_parse_total",
		Help: "EDL parse attempts by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "edlkit_parse_duration_seconds",
		Help:    "Wall time of EDL parses",
		Buckets: prometheus.DefBuckets,
	})

	editsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edlkit_edits_parsed_total",
		Help: "Total number of edits extracted from parsed EDLs",
	})

	watchFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edlkit_watch_files_total",
		Help: "Drop-folder files processed by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edlkit_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})
)

// ObserveParse records one parse attempt, its duration and edit yield.
func ObserveParse(outcome string, edits int, d time.Duration) {
	parseTotal.WithLabelValues(outcome).Inc()
	parseDuration.Observe(d.Seconds())
	if edits > 0 {
		editsParsed.Add(float64(edits))
	}
}

// WatchFile records one drop-folder ingest by outcome.
func WatchFile(outcome string) {
	watchFilesTotal.WithLabelValues(outcome).Inc()
}

// HTTPRequest records one served HTTP request.
func HTTPRequest(route string, code int) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
