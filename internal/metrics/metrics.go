package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BetsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betpool_bets_placed_total",
		Help: "Number of bets accepted by the placement service.",
	})

	BetsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betpool_bets_cancelled_total",
		Help: "Number of bets cancelled and refunded.",
	})

	BetsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betpool_bets_settled_total",
		Help: "Number of bets settled, by outcome.",
	}, []string{"outcome"})

	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betpool_job_runs_total",
		Help: "Scheduled job executions, by job and result.",
	}, []string{"job", "result"})

	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betpool_provider_requests_total",
		Help: "Scoreboard provider requests, by result.",
	}, []string{"result"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
