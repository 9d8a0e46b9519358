package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation metrics
var (
	mazesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazegen_mazes_generated_total",
		Help: "Mazes built, by shape and enhancer",
	}, []string{"shape", "enhancer"})

	mazeBuildFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazegen_build_failures_total",
		Help: "Maze builds that returned an error, by kind",
	}, []string{"kind"})

	mazeBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mazegen_build_duration_seconds",
		Help:    "Time to build one maze",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"shape"})

	mazePathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mazegen_path_length",
		Help:    "Corridor steps between start and finish",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500},
	})

	mazeRankingSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mazegen_ranking_size",
		Help: "Mazes held in the hardest-maze ranking",
	})
)

// Cache metrics
var (
	mazeCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mazegen_cache_lookups_total",
		Help: "Maze cache lookups, by result (hit, miss, error)",
	}, []string{"result"})
)
