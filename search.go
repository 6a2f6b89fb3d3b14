package nash

import (
	"sort"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/timpalpant/go-nash/lp"
)

// ErrNoEquilibrium is returned when every candidate support pair has been
// exhausted without finding an equilibrium. Nash's existence theorem
// guarantees one for every finite two-player game, so with a sound solver
// this signals a bug or a numerical failure, not a property of the game.
var ErrNoEquilibrium = errors.New("nash: no equilibrium found")

// Searcher finds one Nash equilibrium of a MatrixGame by support
// enumeration. A Searcher is stateless between calls and may be reused
// across games.
type Searcher struct {
	params Params
}

// New creates a Searcher with the given Params.
func New(params Params) *Searcher {
	if params.Solver == nil {
		params.Solver = lp.NewSimplex()
	}

	return &Searcher{params: params}
}

// Solve finds one Nash equilibrium of g using default Params.
func Solve(g *MatrixGame) (*Equilibrium, error) {
	return New(Params{}).Solve(g)
}

// Solve runs Algorithm 1 of Porter et al. (2008) on g and returns the
// first equilibrium found.
//
// Support-size pairs are visited in ascending order of (|x1-x2|, x1+x2):
// balanced, small supports first. For each pair, player 0's supports are
// enumerated lexicographically; each one restricts player 1's candidate
// actions by conditional-dominance pruning before player 1's supports are
// enumerated from the reduced set. Surviving pairs go to the feasibility
// program, and the first feasible one wins.
//
// A candidate whose program is infeasible is simply rejected. A candidate
// on which the solver fails is skipped with a warning rather than
// aborting the search; if the search then exhausts all candidates, the
// returned error reports how many solves failed.
func (s *Searcher) Solve(g *MatrixGame) (*Equilibrium, error) {
	sizePairs := supportSizePairs(g.NumActions(Player0), g.NumActions(Player1))
	solveFailures := 0

	for idx, x := range sizePairs {
		glog.V(1).Infof("Searching supports of size (%d, %d)", x[0], x[1])

		support1 := make([]Action, 0, x[0])
		support2 := make([]Action, 0, x[1])
		comb1 := make([]int, x[0])
		comb2 := make([]int, x[1])

		gen1 := combin.NewCombinationGenerator(g.NumActions(Player0), x[0])
		for gen1.Next() {
			gen1.Combination(comb1)
			support1 = actionsAt(g.actions[Player0], comb1, support1)

			candidates2 := g.pruneDominated(Player1, g.actions[Player1], support1)
			if len(candidates2) < x[1] {
				continue
			}
			if g.hasDominatedAction(Player0, support1, candidates2) {
				continue
			}

			gen2 := combin.NewCombinationGenerator(len(candidates2), x[1])
			for gen2.Next() {
				gen2.Combination(comb2)
				support2 = actionsAt(candidates2, comb2, support2)

				if g.hasDominatedAction(Player0, support1, support2) {
					continue
				}

				eq, err := g.solveFeasibility(s.params.Solver, [2][]Action{support1, support2})
				if errors.Cause(err) == lp.ErrInfeasible {
					continue
				}
				if err != nil {
					solveFailures++
					glog.Warningf("Skipping supports %v/%v: %v", support1, support2, err)
					continue
				}

				eq.SizePairIndex = idx
				glog.V(1).Infof("Found equilibrium at size pair %d: supports %v/%v",
					idx, eq.Supports[0], eq.Supports[1])
				return eq, nil
			}
		}
	}

	if solveFailures > 0 {
		return nil, errors.Wrapf(ErrNoEquilibrium, "%d feasibility solves failed", solveFailures)
	}
	return nil, ErrNoEquilibrium
}

// SolveCached is Solve with a read-through SolutionStore: a previously
// solved game is returned without searching, and a fresh solution is
// written back before it is returned.
func (s *Searcher) SolveCached(g *MatrixGame, store SolutionStore) (*Equilibrium, error) {
	key, err := g.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(err, "encoding game key")
	}

	eq, ok, err := store.Get(key)
	if err != nil {
		return nil, errors.Wrap(err, "reading solution store")
	}
	if ok {
		glog.V(1).Infof("Solution store hit for %d-byte game key", len(key))
		return eq, nil
	}

	eq, err = s.Solve(g)
	if err != nil {
		return nil, err
	}

	if err := store.Put(key, eq); err != nil {
		return nil, errors.Wrap(err, "writing solution store")
	}
	return eq, nil
}

// supportSizePairs returns every support-size pair (x1, x2) with
// 1 <= x1 <= n1 and 1 <= x2 <= n2, sorted ascending by (|x1-x2|, x1+x2).
// Pairs whose keys tie are ordered by x1 to keep the search deterministic.
func supportSizePairs(n1, n2 int) [][2]int {
	pairs := make([][2]int, 0, n1*n2)
	for x1 := 1; x1 <= n1; x1++ {
		for x2 := 1; x2 <= n2; x2++ {
			pairs = append(pairs, [2]int{x1, x2})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		di, dj := absDiff(pairs[i]), absDiff(pairs[j])
		if di != dj {
			return di < dj
		}
		si, sj := pairs[i][0]+pairs[i][1], pairs[j][0]+pairs[j][1]
		if si != sj {
			return si < sj
		}
		return pairs[i][0] < pairs[j][0]
	})

	return pairs
}

func absDiff(x [2]int) int {
	if x[0] > x[1] {
		return x[0] - x[1]
	}
	return x[1] - x[0]
}
