// Package graph holds the undirected graph a session builds from V and E
// commands.
//
// Vertices are the integers 1..n. Edges are stored in canonical form, the
// smaller endpoint first, so that <1,2> and <2,1> compare equal.
package graph

// Edge is an undirected edge in canonical form (A < B).
type Edge struct {
	A int
	B int
}

// NewEdge returns the canonical edge joining a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Check reports whether the edge <a,b> may appear in a graph on n
// vertices.
func Check(n, a, b int) error {
	if a < 1 || a > n || b < 1 || b > n || a == b {
		return InvalidEdge{A: a, B: b}
	}
	return nil
}

// EdgeSet accumulates the edges of one E command, rejecting the first
// invalid or repeated edge.
type EdgeSet struct {
	n     int
	seen  map[Edge]struct{}
	edges []Edge
}

// NewEdgeSet returns an empty EdgeSet for a graph on n vertices.
func NewEdgeSet(n int) *EdgeSet {
	return &EdgeSet{n: n, seen: make(map[Edge]struct{})}
}

// Add validates <a,b> and appends its canonical form.
func (s *EdgeSet) Add(a, b int) error {
	if err := Check(s.n, a, b); err != nil {
		return err
	}
	e := NewEdge(a, b)
	if _, ok := s.seen[e]; ok {
		return DuplicateEdge{A: a, B: b}
	}
	s.seen[e] = struct{}{}
	s.edges = append(s.edges, e)
	return nil
}

// Edges returns the accepted edges in the order they were added.
func (s *EdgeSet) Edges() []Edge {
	return append([]Edge(nil), s.edges...)
}

// Graph is the mutable graph owned by a session. The zero value is a
// graph with no vertices and no edges.
type Graph struct {
	vertices  int
	edges     []Edge
	degree   map[int]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// Vertices returns the current vertex count, 0 if none was set.
func (g *Graph) Vertices() int {
	return g.vertices
}

// Edges returns a copy of the current edge set.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// SetVertexCount replaces the vertex count and discards every edge.
// Counts not greater than 1 are rejected and leave g unchanged.
func (g *Graph) SetVertexCount(n int) error {
	if n <= 1 {
		return InvalidVertexCount(n)
	}
	g.vertices = n
	g.edges = nil
	g.degree = nil
	return nil
}

// ReplaceEdges swaps in a new edge set. The whole set is validated
// first; on error g keeps its previous edges.
func (g *Graph) ReplaceEdges(edges []Edge) error {
	if g.vertices == 0 {
		return ErrVerticesNotDefined
	}
	set := NewEdgeSet(g.vertices)
	for _, e := range edges {
		if err := set.Add(e.A, e.B); err != nil {
			return err
		}
	}
	g.edges = set.edges
	g.rebuildDegrees()
	return nil
}

func (g *Graph) rebuildDegrees() {
	g.degree = make(map[int]int, g.vertices)
	for _, e := range g.edges {
		g.degree[e.A]++
		g.degree[e.B]++
	}
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int {
	return g.degree[v]
}

// MaxDegree returns the vertex with the most incident edges and its
// degree, preferring the lowest vertex on ties. It returns 0, 0 for a
// graph without edges.
func (g *Graph) MaxDegree() (v, degree int) {
	for u := 1; u <= g.vertices; u++ {
		if d := g.degree[u]; d > degree {
			v, degree = u, d
		}
	}
	return v, degree
}

// Snapshot returns an immutable copy of the current graph.
func (g *Graph) Snapshot() Snapshot {
	return Snapshot{Vertices: g.vertices, Edges: g.Edges()}
}

// Snapshot is a point-in-time copy of a Graph handed to the cover
// search. It is not modified after creation.
type Snapshot struct {
	Vertices int
	Edges    []Edge `hash:"set"`
}

// Covers reports whether every edge has at least one endpoint in
// vertices.
func (s Snapshot) Covers(vertices []int) bool {
	in := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		in[v] = true
	}
	for _, e := range s.Edges {
		if !in[e.A] && !in[e.B] {
			return false
		}
	}
	return true
}
