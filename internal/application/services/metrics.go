package services

import "github.com/prometheus/client_golang/prometheus"

var (
	votesCastTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slopwatch_votes_cast_total",
			Help: "The total number of votes added",
		},
	)

	votesRemovedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slopwatch_votes_removed_total",
			Help: "The total number of votes removed by toggling off",
		},
	)

	postsConfirmedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slopwatch_posts_confirmed_total",
			Help: "The total number of posts that crossed the confirmation threshold",
		},
	)

	snapshotSaveFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slopwatch_snapshot_save_failures_total",
			Help: "The total number of failed snapshot writes",
		},
	)

	rateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slopwatch_rate_limited_requests_total",
			Help: "The total number of vote requests rejected by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(votesCastTotal)
	prometheus.MustRegister(votesRemovedTotal)
	prometheus.MustRegister(postsConfirmedTotal)
	prometheus.MustRegister(snapshotSaveFailuresTotal)
	prometheus.MustRegister(rateLimitedTotal)
}
