package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pipeline_parse_requests_total",
		Help: "Total number of pipeline validation requests",
	})

	parseCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pipeline_parse_cycles_total",
		Help: "Validation requests whose graph was not a DAG",
	})

	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pipeline_parse_duration_seconds",
		Help:    "Duration of pipeline validation",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})
)
