// Package cover finds minimum vertex covers by reducing "is there a
// cover of size k?" to SAT and trying k = 1, 2, ... until a backend
// reports a model.
package cover

import (
	"fmt"
	"strconv"
	"strings"
)

// Cover is a vertex cover: distinct vertices in ascending order.
type Cover []int

// String renders c as the output line, vertices separated by single
// spaces.
func (c Cover) String() string {
	s := make([]string, len(c))
	for i, v := range c {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

// NoCoverFound is returned when no k up to the vertex count yields a
// model. For a graph with at least one vertex this cannot happen with
// a correct encoding and backend.
type NoCoverFound struct {
	Vertices int
	Edges    int
}

func (e NoCoverFound) Error() string {
	return fmt.Sprintf("no vertex cover found for graph with %d vertices and %d edges", e.Vertices, e.Edges)
}

// inconsistentModel is returned when a backend reports a model that
// does not decode to a cover of the attempted size.
type inconsistentModel struct {
	k     int
	cover Cover
}

func (e inconsistentModel) Error() string {
	return fmt.Sprintf("internal solver failure: model for k=%d decodes to [%s]", e.k, e.cover)
}
