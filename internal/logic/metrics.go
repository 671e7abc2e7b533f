package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for statLookups
const (
	outcomeOK             = "ok"
	outcomePlayerNotFound = "player_not_found"
	outcomeNoMatchData    = "no_match_data"
)

var (
	statLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faceit_stat_lookups_total",
		Help: "Total number of player stat lookups by outcome",
	}, []string{"outcome"})

	matchExtractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faceit_match_extractions_total",
		Help: "Total number of per-match stat extractions by result",
	}, []string{"result"})

	lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "faceit_stat_lookup_duration_seconds",
		Help:    "Duration of a full player stat lookup",
		Buckets: prometheus.DefBuckets,
	})
)
