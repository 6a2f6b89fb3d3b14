// Package lp provides a minimal abstraction for linear feasibility
// programs: continuous variables, linear equality and inequality
// constraints, and no objective function.
//
// The search for a Nash equilibrium submits one such program per candidate
// support pair. Any linear-programming library that can report feasibility
// and primal variable values can back a Solver; the built-in implementation
// uses gonum's simplex method.
package lp

import (
	"github.com/pkg/errors"
)

// ErrInfeasible is returned by a Solver when the program admits no
// feasible assignment. Callers should test for it with errors.Cause.
var ErrInfeasible = errors.New("lp: program is infeasible")

// Var identifies a single variable within a Program.
type Var int

// Term is one linear term: Coeff times the variable identified by Var.
type Term struct {
	Var   Var
	Coeff float64
}

type constraintOp int

const (
	opEq constraintOp = iota
	opLessEq
)

type constraint struct {
	terms []Term
	op    constraintOp
	rhs   float64
}

// Program is a linear feasibility program under construction.
// The zero value is an empty program ready for use.
type Program struct {
	numVars     int
	free        []bool
	constraints []constraint
}

func NewProgram() *Program {
	return &Program{}
}

// AddVariable declares a new continuous variable constrained to be >= 0
// and returns its identifier.
func (p *Program) AddVariable() Var {
	v := Var(p.numVars)
	p.numVars++
	p.free = append(p.free, false)
	return v
}

// AddFreeVariable declares a new unbounded continuous variable and
// returns its identifier.
func (p *Program) AddFreeVariable() Var {
	v := Var(p.numVars)
	p.numVars++
	p.free = append(p.free, true)
	return v
}

// AddEquality adds the constraint sum(terms) == rhs.
func (p *Program) AddEquality(terms []Term, rhs float64) {
	p.constraints = append(p.constraints, constraint{terms: terms, op: opEq, rhs: rhs})
}

// AddLessEq adds the constraint sum(terms) <= rhs.
func (p *Program) AddLessEq(terms []Term, rhs float64) {
	p.constraints = append(p.constraints, constraint{terms: terms, op: opLessEq, rhs: rhs})
}

// NumVariables returns the number of variables declared so far.
func (p *Program) NumVariables() int {
	return p.numVars
}

// NumConstraints returns the number of constraints added so far.
func (p *Program) NumConstraints() int {
	return len(p.constraints)
}

// Solver finds a feasible assignment for a Program.
//
// Solve returns one value per declared variable, in declaration order.
// If the program has no feasible assignment, Solve returns ErrInfeasible.
// Any other error indicates that the solver failed and the result for
// this program is unknown, which callers must treat as distinct from
// infeasibility.
type Solver interface {
	Solve(p *Program) ([]float64, error)
}
