package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paluwagan_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paluwagan_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"})

	InterestSweepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paluwagan_interest_sweeps_total",
		Help: "Interest sweeps run, by outcome",
	}, []string{"outcome"})

	InterestLoansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paluwagan_interest_loans_total",
		Help: "Loans visited by interest sweeps, by result",
	}, []string{"result"})

	InterestSweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paluwagan_interest_sweep_duration_seconds",
		Help:    "Interest sweep latency",
		Buckets: prometheus.DefBuckets,
	})

	SettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paluwagan_settlements_total",
		Help: "Payment settlements attempted, by outcome",
	}, []string{"outcome"})

	ArchivedTransactionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paluwagan_archived_transactions_total",
		Help: "Transactions flagged by fiscal year archival",
	})
)

// RecordSweep adds the loan counts of one interest sweep.
func RecordSweep(updated, skipped, failed int) {
	InterestLoansTotal.WithLabelValues("updated").Add(float64(updated))
	InterestLoansTotal.WithLabelValues("skipped").Add(float64(skipped))
	InterestLoansTotal.WithLabelValues("failed").Add(float64(failed))
	outcome := "success"
	if failed > 0 {
		outcome = "partial"
	}
	InterestSweepsTotal.WithLabelValues(outcome).Inc()
}
