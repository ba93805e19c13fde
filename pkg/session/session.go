// Package session applies parsed commands to a graph and prints a
// minimum vertex cover after every non-empty edge update.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/graphsat/vertexcover/pkg/command"
	"github.com/graphsat/vertexcover/pkg/cover"
	"github.com/graphsat/vertexcover/pkg/graph"
	"github.com/graphsat/vertexcover/pkg/metrics"
)

const (
	maxLineSize = 1024 * 1024

	unrecognizedKind = "unrecognized"
)

type Session struct {
	graph   *graph.Graph
	coverer cover.Coverer
	out     io.Writer
	diag    io.Writer
	logger  logrus.FieldLogger

	exitOnInvalidVertexCount bool
}

func New(options ...Option) (*Session, error) {
	s := Session{
		graph:                    graph.New(),
		exitOnInvalidVertexCount: true,
	}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Session) error

func WithCoverer(c cover.Coverer) Option {
	return func(s *Session) error {
		s.coverer = c
		return nil
	}
}

// WithOutput sets where cover lines are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) error {
		s.out = w
		return nil
	}
}

// WithDiagnostics sets where "Error: ..." lines for rejected commands
// are written. Defaults to stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Session) error {
		s.diag = w
		return nil
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) error {
		s.logger = l
		return nil
	}
}

// WithExitOnInvalidVertexCount controls whether a V command with a
// count below 2 stops Run.
func WithExitOnInvalidVertexCount(exit bool) Option {
	return func(s *Session) error {
		s.exitOnInvalidVertexCount = exit
		return nil
	}
}

var defaults = []Option{
	func(s *Session) error {
		if s.coverer == nil {
			c, err := cover.New()
			if err != nil {
				return err
			}
			s.coverer = c
		}
		return nil
	},
	func(s *Session) error {
		if s.out == nil {
			s.out = os.Stdout
		}
		if s.diag == nil {
			s.diag = os.Stderr
		}
		return nil
	},
	func(s *Session) error {
		if s.logger == nil {
			l := logrus.New()
			l.SetOutput(io.Discard)
			s.logger = l
		}
		return nil
	},
}

// Graph returns a snapshot of the current graph.
func (s *Session) Graph() graph.Snapshot {
	return s.graph.Snapshot()
}

// Apply executes one parsed command. A SetEdges that leaves the graph
// with at least one edge runs the cover search and writes the cover.
func (s *Session) Apply(cmd command.Command) error {
	switch c := cmd.(type) {
	case command.SetVertexCount:
		return s.graph.SetVertexCount(c.N)
	case command.SetEdges:
		if err := s.graph.ReplaceEdges(c.Edges); err != nil {
			return err
		}
		if len(c.Edges) == 0 {
			return nil
		}
		return s.cover()
	default:
		return errors.Errorf("unsupported command %T", cmd)
	}
}

func (s *Session) cover() error {
	g := s.graph.Snapshot()
	c, err := s.coverer.Search(g)
	if err != nil {
		return errors.Wrapf(err, "searching cover of %d vertices and %d edges", g.Vertices, len(g.Edges))
	}
	hub, degree := s.graph.MaxDegree()
	s.logger.WithFields(logrus.Fields{
		"vertices":  g.Vertices,
		"edges":     len(g.Edges),
		"maxDegree": degree,
		"hub":       hub,
		"size":      len(c),
	}).Debug("found minimum vertex cover")
	_, err = fmt.Fprintln(s.out, c.String())
	return errors.Wrap(err, "writing cover")
}

// Exec parses line against the current vertex count and applies it.
// Blank lines are ignored.
func (s *Session) Exec(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd, err := command.Parse(line, s.graph.Vertices())
	if errors.Is(err, command.ErrEmptyLine) {
		return nil
	}
	kind := kindOf(line)
	if err == nil {
		kind = cmd.Kind()
		s.logger.WithFields(logrus.Fields{"line": line, "command": cmd.String()}).Debug("applying command")
		err = s.Apply(cmd)
	}
	metrics.EmitCommand(kind, err)
	return err
}

// Run executes every line read from r until the input ends, the
// context is done, or a fatal error occurs. Rejected commands that are
// not fatal are reported on the diagnostics writer and skipped.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		err := s.Exec(ctx, scanner.Text())
		if err == nil {
			continue
		}
		if s.Fatal(err) {
			return err
		}
		fmt.Fprintf(s.diag, "Error: %s\n", err)
	}
	return errors.Wrap(scanner.Err(), "reading input")
}

// Fatal reports whether err stops the session. Parse and validation
// errors are recoverable, except an invalid vertex count when the
// session is configured to exit on it. Anything else, such as a failed
// cover search, is fatal.
func (s *Session) Fatal(err error) bool {
	var ivc graph.InvalidVertexCount
	if errors.As(err, &ivc) {
		return s.exitOnInvalidVertexCount
	}
	return !recoverable(err)
}

func recoverable(err error) bool {
	if errors.Is(err, graph.ErrVerticesNotDefined) {
		return true
	}
	var (
		mvc command.MalformedVertexCount
		mel command.MalformedEdgeList
		mep command.MalformedEdgePair
		unc command.UnrecognizedCommand
		ie  graph.InvalidEdge
		de  graph.DuplicateEdge
	)
	return errors.As(err, &mvc) ||
		errors.As(err, &mel) ||
		errors.As(err, &mep) ||
		errors.As(err, &unc) ||
		errors.As(err, &ie) ||
		errors.As(err, &de)
}

func kindOf(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return unrecognizedKind
	}
	switch {
	case strings.HasPrefix(fields[0], "V"):
		return command.SetVertexCount{}.Kind()
	case strings.HasPrefix(fields[0], "E"):
		return command.SetEdges{}.Kind()
	}
	return unrecognizedKind
}
