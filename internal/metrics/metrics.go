// Package metrics exposes Prometheus collectors for parameter generation and runs.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	primeCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "elgamal",
			Subsystem: "primes",
			Name:      "candidates",
			Help:      "Candidates drawn per prime search, by kind",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"kind"},
	)

	primeSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "elgamal",
			Subsystem: "primes",
			Name:      "searches_total",
			Help:      "Prime searches classified by kind and result",
		},
		[]string{"kind", "result"},
	)

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "elgamal",
			Subsystem: "run",
			Name:      "operations_total",
			Help:      "Run steps classified by operation and result",
		},
		[]string{"op", "result"},
	)

	runSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "elgamal",
			Subsystem: "run",
			Name:      "seconds",
			Help:      "Wall time of an end-to-end run by modulus size",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		},
		[]string{"bits"},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(primeCandidates, primeSearches, operations, runSeconds)
	})
}

// PrimeObserver matches primes.Observer.
func PrimeObserver(kind string, attempts int, found bool) {
	ensureRegistered()
	primeCandidates.WithLabelValues(kind).Observe(float64(attempts))
	primeSearches.WithLabelValues(kind, result(found)).Inc()
}

// OperationsCounter returns the run step counter, labelled by op and result.
func OperationsCounter() *prometheus.CounterVec {
	ensureRegistered()
	return operations
}

// Operation records one step outcome.
func Operation(op string, ok bool) {
	OperationsCounter().WithLabelValues(op, result(ok)).Inc()
}

// RunObserver returns the run latency histogram for one modulus size.
func RunObserver(bits string) prometheus.Observer {
	ensureRegistered()
	return runSeconds.WithLabelValues(bits)
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "fail"
}
