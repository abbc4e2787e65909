package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboardly_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ModerationActionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboardly_moderation_actions_total",
			Help: "Total number of moderation decisions applied, by entity and resulting status.",
		},
		[]string{"entity", "status"},
	)
	MatchRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboardly_match_requests_total",
			Help: "Total number of AI matching requests, by direction and outcome.",
		},
		[]string{"kind", "outcome"},
	)
	MatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboardly_match_request_duration_seconds",
			Help:    "Duration of AI matching requests in seconds.",
			Buckets: []float64{1, 5, 15, 30, 60, 120},
		},
		[]string{"kind"},
	)
	ApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboardly_applications_submitted_total",
			Help: "Total number of submitted job applications.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ModerationActionsCounter)
	prometheus.MustRegister(MatchRequestsCounter)
	prometheus.MustRegister(MatchDuration)
	prometheus.MustRegister(ApplicationsCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
