package service

import "github.com/prometheus/client_golang/prometheus"

var (
	menuBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "catalog_menu_builds_total", Help: "Count of menu computations by result"},
		[]string{"result"},
	)
	menuLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_menu_build_seconds",
		Help:    "Latency of menu computations",
		Buckets: prometheus.DefBuckets,
	})
)

func init() { prometheus.MustRegister(menuBuilds, menuLatency) }
