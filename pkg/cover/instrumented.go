package cover

import (
	"time"

	"github.com/graphsat/vertexcover/pkg/graph"
)

type InstrumentedCoverer struct {
	coverer               Coverer
	successMetricsEmitter func(time.Duration, int)
	failureMetricsEmitter func(time.Duration)
}

var _ Coverer = &InstrumentedCoverer{}

func NewInstrumentedCoverer(coverer Coverer, successMetricsEmitter func(time.Duration, int), failureMetricsEmitter func(time.Duration)) *InstrumentedCoverer {
	return &InstrumentedCoverer{
		coverer:               coverer,
		successMetricsEmitter: successMetricsEmitter,
		failureMetricsEmitter: failureMetricsEmitter,
	}
}

func (ic *InstrumentedCoverer) Search(g graph.Snapshot) (Cover, error) {
	start := time.Now()
	c, err := ic.coverer.Search(g)
	if err != nil {
		ic.failureMetricsEmitter(time.Since(start))
	} else {
		ic.successMetricsEmitter(time.Since(start), len(c))
	}
	return c, err
}
