package lp

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// rankTol bounds how small a coefficient may get during row elimination
// before it is treated as zero.
const rankTol = 1e-10

// Simplex solves feasibility programs with gonum's implementation of the
// simplex method. Simplex implements Solver.
//
// The program is converted to standard form: free variables are split into
// a positive and a negative part, and each inequality gains a slack
// variable. The objective is identically zero, so the phase-1 basic
// feasible solution is already optimal.
type Simplex struct {
	// Tol is the tolerance passed through to the underlying solver.
	// If zero, gonum's default is used.
	Tol float64
}

var _ Solver = &Simplex{}

func NewSimplex() *Simplex {
	return &Simplex{}
}

// Solve implements Solver.
func (s *Simplex) Solve(p *Program) ([]float64, error) {
	if len(p.constraints) == 0 {
		// Nothing constrains the variables; zero satisfies all bounds.
		return make([]float64, p.numVars), nil
	}

	// Column layout: posCol[i] for every variable, then negCol[i] for each
	// free variable, then one slack column per inequality.
	posCol := make([]int, p.numVars)
	negCol := make([]int, p.numVars)
	nCols := 0
	for i := 0; i < p.numVars; i++ {
		posCol[i] = nCols
		nCols++
	}
	for i := 0; i < p.numVars; i++ {
		negCol[i] = -1
		if p.free[i] {
			negCol[i] = nCols
			nCols++
		}
	}
	nSlack := 0
	for _, c := range p.constraints {
		if c.op == opLessEq {
			nSlack++
		}
	}
	nCols += nSlack

	nRows := len(p.constraints)
	a := mat.NewDense(nRows, nCols, nil)
	b := make([]float64, nRows)
	slack := nCols - nSlack
	for row, c := range p.constraints {
		for _, t := range c.terms {
			i := int(t.Var)
			a.Set(row, posCol[i], a.At(row, posCol[i])+t.Coeff)
			if negCol[i] >= 0 {
				a.Set(row, negCol[i], a.At(row, negCol[i])-t.Coeff)
			}
		}
		if c.op == opLessEq {
			a.Set(row, slack, 1)
			slack++
		}
		b[row] = c.rhs
	}

	// gonum's simplex reports ErrSingular for any rank-deficient row set,
	// whether or not the system is consistent. Drop dependent rows first:
	// a consistent duplicate is redundant, an inconsistent one proves the
	// program infeasible outright.
	kept, err := independentRows(a, b)
	if err != nil {
		return nil, err
	}
	if len(kept) < nRows {
		reduced := mat.NewDense(len(kept), nCols, nil)
		reducedB := make([]float64, len(kept))
		for i, row := range kept {
			reduced.SetRow(i, a.RawRowView(row))
			reducedB[i] = b[row]
		}
		a, b = reduced, reducedB
	}

	c := make([]float64, nCols)
	_, x, err := convexlp.Simplex(c, a, b, s.Tol, nil)
	if err == convexlp.ErrInfeasible {
		return nil, ErrInfeasible
	}
	if err != nil {
		return nil, errors.Wrap(err, "lp: simplex failed")
	}

	values := make([]float64, p.numVars)
	for i := range values {
		values[i] = x[posCol[i]]
		if negCol[i] >= 0 {
			values[i] -= x[negCol[i]]
		}
	}

	return values, nil
}

// independentRows returns the indices of a maximal linearly independent
// subset of the rows of the augmented system [a | b], by Gaussian
// elimination with partial pivoting. A row that eliminates to zero
// coefficients but a nonzero right-hand side contradicts the rows before
// it, so the system is infeasible.
func independentRows(a *mat.Dense, b []float64) ([]int, error) {
	nRows, nCols := a.Dims()
	kept := make([]int, 0, nRows)
	pivots := make([][]float64, 0, nRows)
	pivotCols := make([]int, 0, nRows)

	for row := 0; row < nRows; row++ {
		work := make([]float64, nCols+1)
		copy(work, a.RawRowView(row))
		work[nCols] = b[row]

		for k, col := range pivotCols {
			if f := work[col]; f != 0 {
				for j, v := range pivots[k] {
					work[j] -= f * v
				}
			}
		}

		pivot := -1
		max := rankTol
		for j := 0; j < nCols; j++ {
			if abs := math.Abs(work[j]); abs > max {
				pivot, max = j, abs
			}
		}

		if pivot < 0 {
			if math.Abs(work[nCols]) > rankTol {
				return nil, ErrInfeasible
			}
			continue
		}

		f := work[pivot]
		for j := range work {
			work[j] /= f
		}
		kept = append(kept, row)
		pivots = append(pivots, work)
		pivotCols = append(pivotCols, pivot)
	}

	return kept, nil
}
