package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	KindLabel    = "kind"
	Outcome      = "outcome"
	ResultLabel  = "result"
	Succeeded    = "succeeded"
	Failed       = "failed"
	Satisfiable  = "sat"
	Unsatisfied  = "unsat"
	namespace    = "vertexcover"
	coverSubsyst = "cover"
)

// To add new metrics:
// 1. Register new metrics in Register() below.
// 2. Add an Emit helper for the code paths that update them.
var (
	commandCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Number of input commands processed, by command kind and outcome",
		},
		[]string{KindLabel, Outcome},
	)

	attemptCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: coverSubsyst,
			Name:      "attempts_total",
			Help:      "Number of cover size attempts handed to the SAT backend, by result",
		},
		[]string{ResultLabel},
	)

	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: coverSubsyst,
			Name:      "search_duration_seconds",
			Help:      "The duration of a minimum vertex cover search",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		},
		[]string{Outcome},
	)

	coverSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: coverSubsyst,
			Name:      "size",
			Help:      "Size of the most recently computed minimum vertex cover",
		},
	)

	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: coverSubsyst,
			Name:      "cache_hits_total",
			Help:      "Number of edge updates answered from the cover cache",
		},
	)
)

// Register adds every collector to r.
func Register(r prometheus.Registerer) {
	r.MustRegister(commandCount)
	r.MustRegister(attemptCount)
	r.MustRegister(searchDuration)
	r.MustRegister(coverSize)
	r.MustRegister(cacheHits)
}

// EmitCommand counts one processed command of the given kind.
func EmitCommand(kind string, err error) {
	outcome := Succeeded
	if err != nil {
		outcome = Failed
	}
	commandCount.WithLabelValues(kind, outcome).Inc()
}

// EmitAttempt counts one SAT attempt.
func EmitAttempt(satisfiable bool) {
	result := Unsatisfied
	if satisfiable {
		result = Satisfiable
	}
	attemptCount.WithLabelValues(result).Inc()
}

// EmitSearchSuccess records a completed search and the size of the
// cover it found.
func EmitSearchSuccess(d time.Duration, size int) {
	searchDuration.WithLabelValues(Succeeded).Observe(d.Seconds())
	coverSize.Set(float64(size))
}

// EmitSearchFailure records a search that ended without a cover.
func EmitSearchFailure(d time.Duration) {
	searchDuration.WithLabelValues(Failed).Observe(d.Seconds())
}

// EmitCacheHit counts one cover served from the cache.
func EmitCacheHit() {
	cacheHits.Inc()
}

// WriteFile writes everything g gathers to path in the prometheus text
// format, replacing the file atomically.
func WriteFile(path string, g prometheus.Gatherer) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, g), "writing metrics to %s", path)
}
