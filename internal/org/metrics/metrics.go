// Package metrics exposes Prometheus instrumentation for service operations.
package metrics

import (
	"errors"
	"time"

	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orgchart"

// Outcome label values.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeBadRequest = "bad_request"
	OutcomeConflict   = "conflict"
	OutcomeError      = "error"
)

var (
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Service operations by outcome.",
	}, []string{"operation", "outcome"})

	OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of service operations, transaction included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// Observe records one finished operation.
func Observe(operation string, started time.Time, err error) {
	OperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	OperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
}

// Outcome classifies err into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, e.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, e.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, e.ErrBadRequest):
		return OutcomeBadRequest
	default:
		return OutcomeError
	}
}
