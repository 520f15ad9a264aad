package logger

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
)

const metricName = "stories_log_statements_total"

var (
	counter     *prometheus.CounterVec //nolint:gochecknoglobals
	counterOnce sync.Once              //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		h.counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook returns the hook. The counter is registered once with the default registry;
// the app label of the first call sticks.
func NewPrometheusHook(app string) PrometheusHook {
	counterOnce.Do(func() {
		counter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        metricName,
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: prometheus.Labels{"app": app},
			},
			[]string{"level"},
		)
	})

	return PrometheusHook{counter: counter}
}

// LogStatements returns the counter behind the hook, nil before the first NewPrometheusHook.
func LogStatements() *prometheus.CounterVec {
	return counter
}

// WriteMetrics writes the log statement counter in the prometheus text format.
// Nothing is written before the first log statement was counted.
func WriteMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	for _, mf := range families {
		if mf.GetName() != metricName {
			continue
		}

		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "failed to write metrics")
		}
	}

	return nil
}
