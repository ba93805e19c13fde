package sat

import (
	"github.com/crillab/gophersat/solver"
)

// gophersatBackend buffers clauses until Solve, since a gophersat
// problem is built from the complete clause list.
type gophersatBackend struct {
	vars    Var
	clauses [][]int
	model   []bool
}

// NewGophersat returns a Backend running the gophersat solver.
func NewGophersat() Backend {
	return &gophersatBackend{}
}

func (b *gophersatBackend) NewVariable() Var {
	b.vars++
	return b.vars
}

func (b *gophersatBackend) AddClause(lits ...Lit) {
	clause := make([]int, len(lits))
	for i, m := range lits {
		clause[i] = int(m)
	}
	b.clauses = append(b.clauses, clause)
	b.model = nil
}

func (b *gophersatBackend) Solve() bool {
	b.model = nil
	pb := solver.ParseSlice(b.clauses)
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return false
	}
	b.model = s.Model()
	return true
}

func (b *gophersatBackend) ValueOf(v Var) Value {
	if b.model == nil || v < 1 || int(v) > len(b.model) {
		return Unknown
	}
	if b.model[v-1] {
		return True
	}
	return False
}
