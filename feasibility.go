package nash

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/go-nash/lp"
)

// solveFeasibility builds and solves the feasibility program for one pair
// of candidate supports (Feasibility Program 1 of Porter et al. (2008)).
//
// The program has one free variable v_i per player (the equilibrium value)
// and one non-negative variable per support action (its probability).
// Every in-support action must earn exactly v_i against the opponent's
// mixture, every out-of-support action at most v_i, and each player's
// probabilities must sum to one.
//
// On success the solution is read back into an Equilibrium. If the
// program is infeasible the returned error has lp.ErrInfeasible as its
// cause; any other error is a solver failure, not a rejection.
func (g *MatrixGame) solveFeasibility(solver lp.Solver, supports [2][]Action) (*Equilibrium, error) {
	prog := lp.NewProgram()

	var v [2]lp.Var
	var probs [2][]lp.Var
	for i := range v {
		v[i] = prog.AddFreeVariable()
	}
	for i := range supports {
		probs[i] = make([]lp.Var, len(supports[i]))
		for k := range supports[i] {
			probs[i][k] = prog.AddVariable()
		}
	}

	for i := range supports {
		opp := 1 - i

		// Expected payoff of each own action against the opponent's
		// mixture, relative to v_i: equal for in-support actions,
		// at most zero surplus for the rest.
		for _, a := range g.actions[i] {
			terms := make([]lp.Term, 0, len(supports[opp])+1)
			for k, b := range supports[opp] {
				terms = append(terms, lp.Term{Var: probs[opp][k], Coeff: g.utility(i, a, b)})
			}
			terms = append(terms, lp.Term{Var: v[i], Coeff: -1})

			if containsAction(supports[i], a) {
				prog.AddEquality(terms, 0)
			} else {
				prog.AddLessEq(terms, 0)
			}
		}

		sum := make([]lp.Term, len(supports[i]))
		for k := range supports[i] {
			sum[k] = lp.Term{Var: probs[i][k], Coeff: 1}
		}
		prog.AddEquality(sum, 1)
	}

	values, err := solver.Solve(prog)
	if errors.Cause(err) == lp.ErrInfeasible {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrapf(err, "solving feasibility program for supports %v/%v",
			supports[0], supports[1])
	}

	eq := &Equilibrium{}
	for i := range supports {
		eq.Supports[i] = append([]Action(nil), supports[i]...)
		eq.Strategies[i] = make(Strategy, len(supports[i]))
		for k, a := range supports[i] {
			eq.Strategies[i][a] = values[probs[i][k]]
		}
		eq.Values[i] = values[v[i]]
	}

	return eq, nil
}
