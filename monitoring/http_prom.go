// Copyright 2024 supplyline.
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "supplyline_http_request_duration_seconds",
	Help:    "Duration of handled HTTP requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "status"})

var WriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "supplyline_entity_write_failures_total",
	Help: "Number of failed entity writes by entity name",
}, []string{"entity"})

var AggregateQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "supplyline_aggregate_query_duration_seconds",
	Help:    "Duration of dashboard and finance aggregate computations",
	Buckets: prometheus.DefBuckets,
})
