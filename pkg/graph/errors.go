package graph

import (
	"errors"
	"fmt"
)

// ErrVerticesNotDefined is returned when an edge set is supplied
// before any vertex count has been set.
var ErrVerticesNotDefined = errors.New("graph: vertices not defined, use the V command before E")

// InvalidVertexCount is returned for a vertex count that cannot hold
// an edge, i.e. one that is not greater than 1.
type InvalidVertexCount int

func (e InvalidVertexCount) Error() string {
	return fmt.Sprintf("graph: invalid number of vertices %d, the vertex count must be greater than 1", int(e))
}

// InvalidEdge is returned for an edge with an endpoint outside
// [1, n] or with equal endpoints. The endpoints are kept in the order
// they were given.
type InvalidEdge struct {
	A, B int
}

func (e InvalidEdge) Error() string {
	return fmt.Sprintf("graph: invalid edge <%d,%d>, endpoints must be distinct and within range", e.A, e.B)
}

// DuplicateEdge is returned when an undirected edge appears twice in
// the same edge set.
type DuplicateEdge struct {
	A, B int
}

func (e DuplicateEdge) Error() string {
	return fmt.Sprintf("graph: duplicate undirected edge <%d,%d>", e.A, e.B)
}
