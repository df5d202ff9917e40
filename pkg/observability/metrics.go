package observability

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "awsh"

// Metrics holds the console collectors on a private registry, so several
// consoles (or tests) never collide on the global one.
type Metrics struct {
	Registry *prometheus.Registry

	navigations   *prometheus.CounterVec
	listings      prometheus.Counter
	invocations   *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	commandErrors *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Position changes, by destination.",
		}, []string{"to"}),
		listings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listings_total",
			Help:      "Category listings.",
		}),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invocations_total",
			Help:      "Completed action invocations, by action and result.",
		}, []string{"action", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invocation_duration_seconds",
			Help:      "Action handler run time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
		commandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_errors_total",
			Help:      "Lines rejected with a recoverable error, by kind.",
		}, []string{"kind"}),
	}

	m.Registry.MustRegister(
		m.navigations,
		m.listings,
		m.invocations,
		m.duration,
		m.commandErrors,
		collectors.NewGoCollector(),
	)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNavigate: func(_ context.Context, e *domain.NavigateEvent) {
			m.navigations.WithLabelValues(e.To.String()).Inc()
		},
		OnList: func(context.Context, *domain.ListEvent) {
			m.listings.Inc()
		},
		OnInvokeReturn: func(_ context.Context, e *domain.InvokeEvent) {
			action := strings.Join(e.Path, domain.PathSeparator)
			result := "ok"
			if e.Err != nil {
				result = "error"
			}
			m.invocations.WithLabelValues(action, result).Inc()
			m.duration.WithLabelValues(action).Observe(e.Duration.Seconds())
		},
		OnCommandError: func(_ context.Context, e *domain.CommandErrorEvent) {
			m.commandErrors.WithLabelValues(ErrorKind(e.Err)).Inc()
		},
	}
}

// ErrorKind is a low-cardinality label for a console error.
func ErrorKind(err error) string {
	var (
		notFound *domain.CommandNotFoundError
		invalid  *domain.InvalidPathError
		usage    *domain.UsageError
		action   *domain.ActionError
	)
	switch {
	case errors.As(err, &notFound):
		return "command_not_found"
	case errors.As(err, &invalid):
		return "invalid_path"
	case errors.As(err, &usage):
		return "usage"
	case errors.As(err, &action):
		return "action"
	}
	return "other"
}
