package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the prometheus collectors for the training process.
type Prometheus struct {
	Error      *prometheus.GaugeVec
	Iterations *prometheus.CounterVec
	Tasks      *prometheus.CounterVec
}

// NewPrometheusMetrics creates the training collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Error: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "net",
				Name:      "error",
				Help:      "current error of the network under training",
			}, []string{"trainer"}),
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "net",
				Name:      "iterations",
				Help:      "number of completed training iterations",
			}, []string{"trainer"}),
		Tasks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "net",
				Name:      "tasks",
				Help:      "number of completed worker pool tasks",
			}, []string{"kind"}),
	}
}
