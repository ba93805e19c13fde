package sat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Recorder is a Backend that keeps a copy of every variable and clause
// passed to the Backend it wraps, so the formula can be written out in
// DIMACS CNF form.
type Recorder struct {
	Backend
	vars     Var
	clauses  [][]Lit
	comments []string
}

// Record wraps b.
func Record(b Backend) *Recorder {
	return &Recorder{Backend: b}
}

func (r *Recorder) NewVariable() Var {
	v := r.Backend.NewVariable()
	if v > r.vars {
		r.vars = v
	}
	return v
}

func (r *Recorder) AddClause(lits ...Lit) {
	r.clauses = append(r.clauses, append([]Lit(nil), lits...))
	r.Backend.AddClause(lits...)
}

// Comment adds a line to the DIMACS comment header.
func (r *Recorder) Comment(format string, args ...interface{}) {
	r.comments = append(r.comments, fmt.Sprintf(format, args...))
}

// Vars returns the number of variables allocated.
func (r *Recorder) Vars() int {
	return int(r.vars)
}

// Clauses returns the recorded clauses in insertion order.
func (r *Recorder) Clauses() [][]Lit {
	return r.clauses
}

// WriteDIMACS writes the recorded formula to w.
func (r *Recorder) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range r.comments {
		for _, line := range strings.Split(c, "\n") {
			fmt.Fprintf(bw, "c %s\n", line)
		}
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", r.vars, len(r.clauses))
	for _, clause := range r.clauses {
		for _, m := range clause {
			fmt.Fprintf(bw, "%d ", m)
		}
		bw.WriteString("0\n")
	}
	return errors.Wrap(bw.Flush(), "writing dimacs")
}
