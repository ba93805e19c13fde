// Package command turns one line of input into a typed command.
//
// Two commands are understood:
//
//	V <int>                 set the vertex count
//	E {<a,b>,<c,d>,...}     replace the edge set, E {} for none
//
// Parsing is pure: it reads nothing but the line and the vertex count
// edges are checked against.
package command

import (
	"fmt"

	"github.com/graphsat/vertexcover/pkg/graph"
)

// Command is the result of parsing one line: SetVertexCount or
// SetEdges.
type Command interface {
	// Kind names the command for logs and metrics.
	Kind() string
	String() string
}

// SetVertexCount replaces the vertex count of the graph.
type SetVertexCount struct {
	N int
}

func (SetVertexCount) Kind() string { return "vertices" }

func (c SetVertexCount) String() string {
	return fmt.Sprintf("V %d", c.N)
}

// SetEdges replaces the edge set of the graph. Edges are canonical and
// free of duplicates.
type SetEdges struct {
	Edges []graph.Edge
}

func (SetEdges) Kind() string { return "edges" }

func (c SetEdges) String() string {
	s := "E {"
	for i, e := range c.Edges {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("<%d,%d>", e.A, e.B)
	}
	return s + "}"
}
