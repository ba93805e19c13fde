package session_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/graphsat/vertexcover/pkg/command"
	"github.com/graphsat/vertexcover/pkg/cover"
	"github.com/graphsat/vertexcover/pkg/graph"
	"github.com/graphsat/vertexcover/pkg/sat"
	"github.com/graphsat/vertexcover/pkg/sat/satfakes"
	"github.com/graphsat/vertexcover/pkg/session"
)

type countingCoverer struct {
	cover.Coverer
	snapshots []graph.Snapshot
}

func (c *countingCoverer) Search(g graph.Snapshot) (cover.Cover, error) {
	c.snapshots = append(c.snapshots, g)
	return c.Coverer.Search(g)
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func parseCover(line string) []int {
	var c []int
	for _, f := range strings.Fields(line) {
		v, err := strconv.Atoi(f)
		Expect(err).ToNot(HaveOccurred())
		c = append(c, v)
	}
	return c
}

var _ = Describe("Session", func() {
	var (
		out, diag *bytes.Buffer
		coverer   *countingCoverer
		options   []session.Option
		s         *session.Session
		ctx       context.Context
	)

	BeforeEach(func() {
		out, diag = &bytes.Buffer{}, &bytes.Buffer{}
		searcher, err := cover.New()
		Expect(err).ToNot(HaveOccurred())
		coverer = &countingCoverer{Coverer: searcher}
		options = nil
		ctx = context.Background()
	})

	JustBeforeEach(func() {
		var err error
		s, err = session.New(append([]session.Option{
			session.WithCoverer(coverer),
			session.WithOutput(out),
			session.WithDiagnostics(diag),
		}, options...)...)
		Expect(err).ToNot(HaveOccurred())
	})

	run := func(input string) error {
		return s.Run(ctx, strings.NewReader(input))
	}

	Context("end to end", func() {
		It("covers a path with two vertices", func() {
			Expect(run("V 4\nE {<1,2>,<2,3>,<3,4>}\n")).To(Succeed())
			out := lines(out.String())
			Expect(out).To(HaveLen(1))
			c := parseCover(out[0])
			Expect(c).To(HaveLen(2))
			Expect(s.Graph().Covers(c)).To(BeTrue())
			Expect(diag.String()).To(BeEmpty())
		})

		It("covers a triangle with two vertices", func() {
			Expect(run("V 3\nE {<1,2>,<2,3>,<1,3>}\n")).To(Succeed())
			out := lines(out.String())
			Expect(out).To(HaveLen(1))
			Expect(parseCover(out[0])).To(HaveLen(2))
		})

		It("rejects a self loop without output", func() {
			Expect(run("V 2\nE {<1,1>}\n")).To(Succeed())
			Expect(out.String()).To(BeEmpty())
			Expect(lines(diag.String())).To(ConsistOf(HavePrefix("Error: graph: invalid edge <1,1>")))
			Expect(coverer.snapshots).To(BeEmpty())
		})

		It("does not search an empty edge set", func() {
			Expect(run("V 5\nE {}\n")).To(Succeed())
			Expect(out.String()).To(BeEmpty())
			Expect(diag.String()).To(BeEmpty())
			Expect(coverer.snapshots).To(BeEmpty())
		})

		It("rejects edges before vertices", func() {
			Expect(run("E {<1,2>}\n")).To(Succeed())
			Expect(out.String()).To(BeEmpty())
			Expect(lines(diag.String())).To(Equal([]string{"Error: " + graph.ErrVerticesNotDefined.Error()}))
		})

		It("prints the cover in ascending order separated by single spaces", func() {
			Expect(run("V 5\nE {<5,4>,<5,3>,<5,2>,<4,1>}\n")).To(Succeed())
			Expect(out.String()).To(MatchRegexp(`^\d+( \d+)*\n$`))
			c := parseCover(lines(out.String())[0])
			Expect(c).To(HaveLen(2))
			Expect(c[0]).To(BeNumerically("<", c[1]))
		})
	})

	Context("properties", func() {
		It("answers the same edge set twice with the same cover", func() {
			Expect(run("V 4\nE {<1,2>,<2,3>,<3,4>}\nE {<1,2>,<2,3>,<3,4>}\n")).To(Succeed())
			out := lines(out.String())
			Expect(out).To(HaveLen(2))
			Expect(out[0]).To(Equal(out[1]))
		})

		It("clears edges when the vertex count changes", func() {
			Expect(run("V 5\nE {<1,2>}\nV 3\n")).To(Succeed())
			Expect(s.Graph().Edges).To(BeEmpty())
			Expect(s.Graph().Vertices).To(Equal(3))
			Expect(run("E {}\n")).To(Succeed())
			Expect(diag.String()).To(BeEmpty())
			Expect(coverer.snapshots).To(HaveLen(1))
		})

		It("detects duplicates regardless of endpoint order", func() {
			Expect(run("V 3\nE {<1,2>,<2,1>}\n")).To(Succeed())
			Expect(out.String()).To(BeEmpty())
			Expect(diag.String()).To(ContainSubstring("duplicate undirected edge <2,1>"))
		})

		It("keeps the previous edges when an update is rejected", func() {
			Expect(run("V 4\nE {<1,2>,<3,4>}\nE {<1,2>,<1,9>}\n")).To(Succeed())
			Expect(s.Graph().Edges).To(Equal([]graph.Edge{{A: 1, B: 2}, {A: 3, B: 4}}))
			Expect(lines(out.String())).To(HaveLen(1))
			Expect(lines(diag.String())).To(HaveLen(1))
		})

		It("reports exactly one diagnostic per rejected command", func() {
			Expect(run(strings.Join([]string{
				"V x",
				"V 4",
				"E <1,2>",
				"E {<1,2>,<2,3}",
				"E {<1,2> <2,3>}",
				"E {<1,5>}",
				"S 1 2",
				"",
				"   ",
				"E {<1,2>}",
			}, "\n"))).To(Succeed())
			Expect(lines(diag.String())).To(HaveLen(6))
			for _, l := range lines(diag.String()) {
				Expect(l).To(HavePrefix("Error: "))
			}
			Expect(lines(out.String())).To(HaveLen(1))
		})
	})

	Context("unicode whitespace", func() {
		It("skips lines made only of unicode spaces and keeps going", func() {
			Expect(run("V 3\n\u2003\n\v\n\u0085\u00a0\nE {<1,2>}\n")).To(Succeed())
			Expect(diag.String()).To(BeEmpty())
			Expect(lines(out.String())).To(HaveLen(1))
		})

		It("reads commands indented with no-break spaces", func() {
			Expect(run("\u00a0V 3\n\u2003E {<1,2>,<2,3>}\n")).To(Succeed())
			Expect(diag.String()).To(BeEmpty())
			Expect(lines(out.String())).To(Equal([]string{"2"}))
		})

		It("reports a line of other symbols once and keeps going", func() {
			Expect(run("V 3\n\u2022\nE {<1,2>}\n")).To(Succeed())
			Expect(lines(diag.String())).To(ConsistOf(ContainSubstring("unrecognized command")))
			Expect(lines(out.String())).To(HaveLen(1))
		})
	})

	Context("with a debug logger", func() {
		var hook *test.Hook

		BeforeEach(func() {
			var logger *logrus.Logger
			logger, hook = test.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)
			options = append(options, session.WithLogger(logger))
		})

		It("logs the highest degree vertex with every cover", func() {
			Expect(run("V 5\nE {<1,2>,<2,3>,<2,4>,<4,5>}\n")).To(Succeed())
			var found []*logrus.Entry
			for _, e := range hook.AllEntries() {
				if e.Message == "found minimum vertex cover" {
					found = append(found, e)
				}
			}
			Expect(found).To(HaveLen(1))
			Expect(found[0].Data).To(HaveKeyWithValue("hub", 2))
			Expect(found[0].Data).To(HaveKeyWithValue("maxDegree", 3))
			Expect(found[0].Data).To(HaveKeyWithValue("size", 2))
		})
	})

	Context("invalid vertex count", func() {
		It("stops the session by default", func() {
			err := run("V 1\nV 3\nE {<1,2>}\n")
			Expect(err).To(HaveOccurred())
			var ivc graph.InvalidVertexCount
			Expect(errors.As(err, &ivc)).To(BeTrue())
			Expect(int(ivc)).To(Equal(1))
			Expect(out.String()).To(BeEmpty())
			Expect(s.Graph().Vertices).To(Equal(0))
		})

		When("configured to continue", func() {
			BeforeEach(func() {
				options = append(options, session.WithExitOnInvalidVertexCount(false))
			})

			It("reports and keeps going", func() {
				Expect(run("V 3\nV 0\nE {<1,2>}\n")).To(Succeed())
				Expect(lines(diag.String())).To(ConsistOf(ContainSubstring("invalid number of vertices 0")))
				Expect(lines(out.String())).To(HaveLen(1))
				Expect(s.Graph().Vertices).To(Equal(3))
			})
		})
	})

	Context("with a backend that never finds a model", func() {
		BeforeEach(func() {
			searcher, err := cover.New(cover.WithBackend(func() sat.Backend {
				fake := &satfakes.FakeBackend{}
				fake.SolveReturns(false)
				return fake
			}))
			Expect(err).ToNot(HaveOccurred())
			coverer = &countingCoverer{Coverer: searcher}
		})

		It("fails the run", func() {
			err := run("V 2\nE {<1,2>}\nV 3\n")
			Expect(err).To(HaveOccurred())
			var nf cover.NoCoverFound
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(s.Graph().Vertices).To(Equal(2))
			Expect(s.Fatal(err)).To(BeTrue())
		})
	})

	Context("Exec", func() {
		It("stops once the context is done", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			Expect(s.Exec(cctx, "V 3")).To(MatchError(context.Canceled))
			Expect(s.Graph().Vertices).To(Equal(0))
		})

		It("ignores blank lines", func() {
			Expect(s.Exec(ctx, "  \t")).To(Succeed())
		})
	})

	Context("Apply", func() {
		It("applies parsed commands directly", func() {
			Expect(s.Apply(command.SetVertexCount{N: 2})).To(Succeed())
			Expect(s.Apply(command.SetEdges{Edges: []graph.Edge{{A: 1, B: 2}}})).To(Succeed())
			Expect(lines(out.String())).To(HaveLen(1))
			Expect(parseCover(lines(out.String())[0])).To(HaveLen(1))
		})
	})

	DescribeTable("Fatal",
		func(err error, exitOnInvalid bool, fatal bool) {
			s, serr := session.New(
				session.WithCoverer(coverer),
				session.WithExitOnInvalidVertexCount(exitOnInvalid),
			)
			Expect(serr).ToNot(HaveOccurred())
			Expect(s.Fatal(err)).To(Equal(fatal))
		},
		Entry("invalid vertex count", graph.InvalidVertexCount(1), true, true),
		Entry("invalid vertex count when continuing", graph.InvalidVertexCount(1), false, false),
		Entry("wrapped invalid vertex count", errors.WithStack(graph.InvalidVertexCount(0)), true, true),
		Entry("malformed vertex count", command.MalformedVertexCount("x"), true, false),
		Entry("malformed edge list", command.MalformedEdgeList("x"), true, false),
		Entry("malformed edge pair", command.MalformedEdgePair("<1"), true, false),
		Entry("unrecognized command", command.UnrecognizedCommand("S"), true, false),
		Entry("invalid edge", graph.InvalidEdge{A: 1, B: 1}, true, false),
		Entry("duplicate edge", graph.DuplicateEdge{A: 2, B: 1}, true, false),
		Entry("vertices not defined", errors.WithStack(graph.ErrVerticesNotDefined), true, false),
		Entry("no cover found", cover.NoCoverFound{Vertices: 2, Edges: 1}, true, true),
		Entry("anything else", errors.New("write failed"), false, true),
	)
})
