package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type giniBackend struct {
	g      *gini.Gini
	vars   Var
	result int
}

// NewGini returns a Backend running the gini CDCL solver.
func NewGini() Backend {
	return &giniBackend{g: gini.New()}
}

func (b *giniBackend) NewVariable() Var {
	b.vars++
	return b.vars
}

func (b *giniBackend) AddClause(lits ...Lit) {
	for _, m := range lits {
		b.g.Add(z.Dimacs2Lit(int(m)))
	}
	b.g.Add(z.LitNull)
	b.result = 0
}

func (b *giniBackend) Solve() bool {
	b.result = b.g.Solve()
	return b.result == satisfiable
}

func (b *giniBackend) ValueOf(v Var) Value {
	if b.result != satisfiable || v < 1 || v > b.vars {
		return Unknown
	}
	// gini only sizes its model for variables that appear in a clause.
	if z.Var(v) > b.g.MaxVar() {
		return Unknown
	}
	if b.g.Value(z.Var(v).Pos()) {
		return True
	}
	return False
}
