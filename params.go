package nash

import (
	"github.com/timpalpant/go-nash/lp"
)

// Params are the configuration options for an equilibrium search.
// An empty Params struct is valid and uses the built-in simplex solver.
type Params struct {
	// Solver solves the linear feasibility program submitted for each
	// candidate support pair. If nil, lp.NewSimplex() is used.
	Solver lp.Solver
}
