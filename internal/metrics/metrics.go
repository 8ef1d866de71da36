package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	ticketsPurchased = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lottery",
			Subsystem: "tickets",
			Name:      "purchased_total",
			Help:      "Total number of tickets sold.",
		},
	)

	purchaseRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lottery",
			Subsystem: "tickets",
			Name:      "rejected_purchases_total",
			Help:      "Ticket purchases that were refused.",
		},
		[]string{"reason"},
	)

	revenue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lottery",
			Subsystem: "draw",
			Name:      "revenue_dollars",
			Help:      "Total ticket revenue of the current draw.",
		},
	)

	draws = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lottery",
			Subsystem: "draw",
			Name:      "runs_total",
			Help:      "Draw attempts by outcome.",
		},
		[]string{"outcome"},
	)

	winners = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lottery",
			Subsystem: "draw",
			Name:      "winning_tickets_total",
			Help:      "Winning tickets by prize tier.",
		},
		[]string{"tier"},
	)

	prizesAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lottery",
			Subsystem: "draw",
			Name:      "prizes_awarded_dollars_total",
			Help:      "Total prize money awarded.",
		},
	)

	drawDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lottery",
			Subsystem: "draw",
			Name:      "duration_seconds",
			Help:      "Duration of draws.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lottery",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lottery",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path"},
	)
)

func init() {
	Registry.MustRegister(
		ticketsPurchased,
		purchaseRejections,
		revenue,
		draws,
		winners,
		prizesAwarded,
		drawDuration,
		httpRequests,
		httpDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordPurchase records a successful purchase and the new revenue total.
func RecordPurchase(tickets int, totalRevenue decimal.Decimal) {
	ticketsPurchased.Add(float64(tickets))
	revenue.Set(totalRevenue.InexactFloat64())
}

// RecordRejectedPurchase records a refused purchase.
func RecordRejectedPurchase(reason string) {
	purchaseRejections.WithLabelValues(reason).Inc()
}

// RecordDraw records a completed draw.
func RecordDraw(tierWinners map[string]int, awarded decimal.Decimal, duration time.Duration) {
	draws.WithLabelValues("completed").Inc()
	for tier, n := range tierWinners {
		winners.WithLabelValues(tier).Add(float64(n))
	}
	prizesAwarded.Add(awarded.InexactFloat64())
	drawDuration.Observe(duration.Seconds())
}

// RecordDrawFailure records a draw that could not run.
func RecordDrawFailure(outcome string) {
	draws.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest records one handled HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
