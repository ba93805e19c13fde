package cover

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/graphsat/vertexcover/pkg/graph"
	"github.com/graphsat/vertexcover/pkg/metrics"
	"github.com/graphsat/vertexcover/pkg/sat"
)

// Coverer computes a minimum vertex cover of a graph snapshot.
type Coverer interface {
	Search(g graph.Snapshot) (Cover, error)
}

// Searcher tries k = 1, 2, ..., n against a fresh backend per k and
// returns the first cover it finds, which is therefore minimum.
type Searcher struct {
	backend sat.Factory
	tracer  Tracer
	logger  logrus.FieldLogger
	dumpDir string
	cache   *cache
	updates int
}

func New(options ...Option) (*Searcher, error) {
	s := Searcher{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Searcher) error

func WithBackend(f sat.Factory) Option {
	return func(s *Searcher) error {
		s.backend = f
		return nil
	}
}

func WithTracer(t Tracer) Option {
	return func(s *Searcher) error {
		s.tracer = t
		return nil
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Searcher) error {
		s.logger = l
		return nil
	}
}

// WithDumpDir makes the Searcher write every encoded instance to dir
// in DIMACS format. The directory is created if missing.
func WithDumpDir(dir string) Option {
	return func(s *Searcher) error {
		if dir == "" {
			return nil
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating dump directory %s", dir)
		}
		s.dumpDir = dir
		return nil
	}
}

// WithCache remembers up to size covers keyed by graph content. A size
// of zero disables caching.
func WithCache(size int) Option {
	return func(s *Searcher) error {
		if size == 0 {
			return nil
		}
		c, err := newCache(size)
		if err != nil {
			return err
		}
		s.cache = c
		return nil
	}
}

var defaults = []Option{
	func(s *Searcher) error {
		if s.backend == nil {
			s.backend = sat.NewGini
		}
		return nil
	},
	func(s *Searcher) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
	func(s *Searcher) error {
		if s.logger == nil {
			l := logrus.New()
			l.SetOutput(io.Discard)
			s.logger = l
		}
		return nil
	},
}

// Search returns a minimum vertex cover of g. A graph without edges has
// the empty cover.
func (s *Searcher) Search(g graph.Snapshot) (Cover, error) {
	s.updates++
	if len(g.Edges) == 0 {
		return Cover{}, nil
	}
	if c, ok := s.cache.get(g); ok {
		metrics.EmitCacheHit()
		s.logger.WithField("size", len(c)).Debug("cover served from cache")
		return c, nil
	}

	for k := 1; k <= g.Vertices; k++ {
		b := s.backend()
		var rec *sat.Recorder
		if s.dumpDir != "" {
			rec = sat.Record(b)
			rec.Comment("vertices %d edges %d k %d", g.Vertices, len(g.Edges), k)
			b = rec
		}

		start := time.Now()
		x := encode(b, g, k)
		if rec != nil {
			s.dump(rec, k)
		}
		ok := b.Solve()
		s.tracer.Trace(Attempt{
			K:           k,
			Vertices:    g.Vertices,
			Edges:       len(g.Edges),
			Variables:   g.Vertices * k,
			Clauses:     x.clauses,
			Satisfiable: ok,
			Duration:    time.Since(start),
		})
		if !ok {
			continue
		}

		c := x.cover(b)
		if len(c) != k || !g.Covers(c) {
			return nil, inconsistentModel{k: k, cover: c}
		}
		s.cache.put(g, c)
		return c, nil
	}

	return nil, NoCoverFound{Vertices: g.Vertices, Edges: len(g.Edges)}
}

func (s *Searcher) dump(rec *sat.Recorder, k int) {
	path := filepath.Join(s.dumpDir, fmt.Sprintf("update-%04d-k%02d.cnf", s.updates, k))
	log := s.logger.WithField("path", path)
	f, err := os.Create(path)
	if err != nil {
		log.WithError(err).Warn("unable to create dimacs dump")
		return
	}
	defer f.Close()
	if err := rec.WriteDIMACS(f); err != nil {
		log.WithError(err).Warn("unable to write dimacs dump")
		return
	}
	log.Debug("wrote dimacs dump")
}
