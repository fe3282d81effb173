// Package metrics exposes Prometheus collectors for catalog mutations.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// Mutation outcomes.
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeForbidden = "forbidden"
	OutcomeConflict  = "conflict"
	OutcomeError     = "error"
)

// Registry holds the application's collectors on a private registry.
type Registry struct {
	reg *prometheus.Registry

	MutationsTotal   *prometheus.CounterVec
	MutationDuration *prometheus.HistogramVec
}

// NewRegistry creates the collectors and registers them together with the
// Go runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		MutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "container_mutations_total",
				Help: "Catalog mutations by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		MutationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "container_mutation_duration_seconds",
				Help:    "Catalog mutation latency in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"action"},
		),
	}

	r.reg.MustRegister(
		r.MutationsTotal,
		r.MutationDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveMutation records one finished mutation.
func (r *Registry) ObserveMutation(action domain.AuditAction, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	a := action.String()
	r.MutationsTotal.WithLabelValues(a, Outcome(err)).Inc()
	r.MutationDuration.WithLabelValues(a).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Outcome classifies a mutation result for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeCommitted
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return OutcomeForbidden
	case errors.Is(err, domain.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrNotFound):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}
