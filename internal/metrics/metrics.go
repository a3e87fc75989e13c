package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Observer is the global metrics collector of the training process.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Error,
		Observer.prometheus.Iterations,
		Observer.prometheus.Tasks,
	)
}

type Metrics struct {
	prometheus Prometheus
}

// Iteration records a completed iteration of the given trainer and its resulting error.
func (m *Metrics) Iteration(trainer string, err float64) {
	m.prometheus.Iterations.WithLabelValues(trainer).Inc()
	m.prometheus.Error.WithLabelValues(trainer).Set(err)
}

// Tasks records n completed tasks of the given kind.
func (m *Metrics) Tasks(kind string, n int) {
	if n <= 0 {
		return
	}
	m.prometheus.Tasks.WithLabelValues(kind).Add(float64(n))
}

// Handler exposes the registered metrics over http.
func Handler() http.Handler {
	return promhttp.Handler()
}
