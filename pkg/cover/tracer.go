package cover

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/graphsat/vertexcover/pkg/metrics"
)

// Attempt describes one k of a search, reported to a Tracer once the
// backend has answered.
type Attempt struct {
	K           int
	Vertices    int
	Edges       int
	Variables   int
	Clauses     int
	Satisfiable bool
	Duration    time.Duration
}

type Tracer interface {
	Trace(a Attempt)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Attempt) {
}

// LoggingTracer logs every attempt at info level.
type LoggingTracer struct {
	Logger logrus.FieldLogger
}

func (t LoggingTracer) Trace(a Attempt) {
	t.Logger.WithFields(logrus.Fields{
		"k":           a.K,
		"vertices":    a.Vertices,
		"edges":       a.Edges,
		"variables":   a.Variables,
		"clauses":     a.Clauses,
		"satisfiable": a.Satisfiable,
		"duration":    a.Duration,
	}).Info("cover attempt")
}

// MetricsTracer counts attempts by result.
type MetricsTracer struct{}

func (MetricsTracer) Trace(a Attempt) {
	metrics.EmitAttempt(a.Satisfiable)
}

// Tracers fans every attempt out to each of its elements in order.
type Tracers []Tracer

func (ts Tracers) Trace(a Attempt) {
	for _, t := range ts {
		t.Trace(a)
	}
}
