//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o satfakes/fake_backend.go . Backend

// Package sat is the boundary between the cover search and the SAT
// solvers it drives.
//
// Literals use the DIMACS convention: variable v is the literal v and
// its negation is -v. Variables are numbered from 1.
package sat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Var identifies a boolean variable of one Backend.
type Var int

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(-v)
}

// Lit is a variable or its negation.
type Lit int

// Var returns the variable of m.
func (m Lit) Var() Var {
	if m < 0 {
		return Var(-m)
	}
	return Var(m)
}

// IsPos reports whether m is a non-negated variable.
func (m Lit) IsPos() bool {
	return m > 0
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return -m
}

// Value is the truth value of a variable in a model.
type Value int8

const (
	Unknown Value = iota
	True
	False
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "unknown"
}

// Backend is a single-use SAT solver instance: variables and clauses
// are added, Solve is called, and on success the model is read back.
type Backend interface {
	// NewVariable allocates a fresh variable.
	NewVariable() Var
	// AddClause adds the disjunction of lits.
	AddClause(lits ...Lit)
	// Solve reports whether the clauses added so far are
	// satisfiable.
	Solve() bool
	// ValueOf returns the value of v in the model found by the last
	// satisfiable Solve, and Unknown otherwise.
	ValueOf(v Var) Value
}

// Factory builds a fresh Backend.
type Factory func() Backend

const (
	Gini      = "gini"
	Gophersat = "gophersat"
)

var factories = map[string]Factory{
	Gini:      NewGini,
	Gophersat: NewGophersat,
}

// UnknownBackend is returned by NewFactory for an unsupported name.
type UnknownBackend string

func (e UnknownBackend) Error() string {
	return fmt.Sprintf("unknown sat backend %q, supported backends are %s", string(e), strings.Join(Names(), ", "))
}

// NewFactory returns the Factory registered under name.
func NewFactory(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, errors.WithStack(UnknownBackend(name))
	}
	return f, nil
}

// Names returns the supported backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
