package cover

import (
	"github.com/graphsat/vertexcover/pkg/graph"
	"github.com/graphsat/vertexcover/pkg/sat"
)

// slots maps the position-indexed encoding of "there is a cover of
// size k" onto backend variables: x[v-1][p-1] is true when vertex v
// fills position p of the cover.
type slots struct {
	n, k    int
	x       [][]sat.Var
	clauses int
}

// encode allocates the n*k variable matrix on b and adds the clauses
// whose models are exactly the covers of g with k distinct vertices.
func encode(b sat.Backend, g graph.Snapshot, k int) *slots {
	s := &slots{n: g.Vertices, k: k, x: make([][]sat.Var, g.Vertices)}
	for v := range s.x {
		s.x[v] = make([]sat.Var, k)
		for p := range s.x[v] {
			s.x[v][p] = b.NewVariable()
		}
	}

	// Every position holds at least one vertex.
	for p := 0; p < k; p++ {
		clause := make([]sat.Lit, 0, s.n)
		for v := 0; v < s.n; v++ {
			clause = append(clause, s.x[v][p].Pos())
		}
		s.add(b, clause...)
	}

	// No vertex fills two positions.
	for v := 0; v < s.n; v++ {
		for p1 := 0; p1 < k; p1++ {
			for p2 := p1 + 1; p2 < k; p2++ {
				s.add(b, s.x[v][p1].Neg(), s.x[v][p2].Neg())
			}
		}
	}

	// No position holds two vertices.
	for p := 0; p < k; p++ {
		for v1 := 0; v1 < s.n; v1++ {
			for v2 := v1 + 1; v2 < s.n; v2++ {
				s.add(b, s.x[v1][p].Neg(), s.x[v2][p].Neg())
			}
		}
	}

	// Every edge has an endpoint in some position.
	for _, e := range g.Edges {
		clause := make([]sat.Lit, 0, 2*k)
		for p := 0; p < k; p++ {
			clause = append(clause, s.x[e.A-1][p].Pos(), s.x[e.B-1][p].Pos())
		}
		s.add(b, clause...)
	}

	return s
}

func (s *slots) add(b sat.Backend, lits ...sat.Lit) {
	b.AddClause(lits...)
	s.clauses++
}

// cover reads the vertices placed in any position from the model of a
// satisfiable b, in ascending order.
func (s *slots) cover(b sat.Backend) Cover {
	var c Cover
	for v := 0; v < s.n; v++ {
		for p := 0; p < s.k; p++ {
			if b.ValueOf(s.x[v][p]) == sat.True {
				c = append(c, v+1)
				break
			}
		}
	}
	return c
}
