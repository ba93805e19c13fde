package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphsat/vertexcover/pkg/graph"
	"github.com/graphsat/vertexcover/pkg/sat"
	"github.com/graphsat/vertexcover/pkg/sat/satfakes"
)

func choose2(n int) int {
	return n * (n - 1) / 2
}

func TestEncodeClauseCounts(t *testing.T) {
	type tc struct {
		Name  string
		Graph graph.Snapshot
		K     int
	}

	for _, tt := range []tc{
		{
			Name:  "single edge k=1",
			Graph: graph.Snapshot{Vertices: 2, Edges: []graph.Edge{{A: 1, B: 2}}},
			K:     1,
		},
		{
			Name: "path k=2",
			Graph: graph.Snapshot{Vertices: 4, Edges: []graph.Edge{
				{A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 4},
			}},
			K: 2,
		},
		{
			Name: "triangle k=3",
			Graph: graph.Snapshot{Vertices: 3, Edges: []graph.Edge{
				{A: 1, B: 2}, {A: 2, B: 3}, {A: 1, B: 3},
			}},
			K: 3,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			n, k := tt.Graph.Vertices, tt.K
			r := sat.Record(sat.NewGini())
			x := encode(r, tt.Graph, k)

			want := k + n*choose2(k) + k*choose2(n) + len(tt.Graph.Edges)
			assert.Equal(t, n*k, r.Vars())
			assert.Equal(t, want, x.clauses)
			assert.Len(t, r.Clauses(), want)
		})
	}
}

func TestEncodeClauseShapes(t *testing.T) {
	g := graph.Snapshot{Vertices: 3, Edges: []graph.Edge{{A: 1, B: 3}}}
	fake := &satfakes.FakeBackend{}
	next := sat.Var(0)
	fake.NewVariableStub = func() sat.Var {
		next++
		return next
	}

	x := encode(fake, g, 2)
	require.Equal(t, 6, fake.NewVariableCallCount())
	require.Equal(t, 2+3*1+2*3+1, fake.AddClauseCallCount())

	// x[v][p] = v*k + p + 1
	assert.Equal(t, sat.Var(1), x.x[0][0])
	assert.Equal(t, sat.Var(6), x.x[2][1])

	// at least one vertex per position
	assert.Equal(t, []sat.Lit{1, 3, 5}, fake.AddClauseArgsForCall(0))
	assert.Equal(t, []sat.Lit{2, 4, 6}, fake.AddClauseArgsForCall(1))
	// vertex 1 not in both positions
	assert.Equal(t, []sat.Lit{-1, -2}, fake.AddClauseArgsForCall(2))
	// position 1 not held by vertices 1 and 2
	assert.Equal(t, []sat.Lit{-1, -3}, fake.AddClauseArgsForCall(5))
	// edge <1,3> covered in some position
	assert.Equal(t, []sat.Lit{1, 5, 2, 6}, fake.AddClauseArgsForCall(11))
}

func TestEncodeClausesDoNotAlias(t *testing.T) {
	g := graph.Snapshot{Vertices: 3, Edges: []graph.Edge{{A: 1, B: 2}, {A: 2, B: 3}}}
	r := sat.Record(sat.NewGini())
	encode(r, g, 2)

	clauses := r.Clauses()
	before := append([]sat.Lit(nil), clauses[0]...)
	for _, c := range clauses[1:] {
		for i := range c {
			c[i] = 0
		}
	}
	assert.Equal(t, before, clauses[0])
}

func TestCoverDecodesModel(t *testing.T) {
	fake := &satfakes.FakeBackend{}
	next := sat.Var(0)
	fake.NewVariableStub = func() sat.Var {
		next++
		return next
	}
	// vertex 3 in position 1, vertex 1 in position 2
	fake.ValueOfStub = func(v sat.Var) sat.Value {
		switch v {
		case 2, 5:
			return sat.True
		}
		return sat.False
	}

	x := encode(fake, graph.Snapshot{Vertices: 3, Edges: []graph.Edge{{A: 1, B: 3}}}, 2)
	assert.Equal(t, Cover{1, 3}, x.cover(fake))
}
