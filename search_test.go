package nash

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-nash/lp"
)

const testTol = 1e-6

func TestSupportSizePairOrdering(t *testing.T) {
	testCases := []struct {
		name     string
		n1, n2   int
		expected [][2]int
	}{
		{"2x2", 2, 2, [][2]int{{1, 1}, {2, 2}, {1, 2}, {2, 1}}},
		{"3x3", 3, 3, [][2]int{
			{1, 1}, {2, 2}, {3, 3},
			{1, 2}, {2, 1}, {2, 3}, {3, 2},
			{1, 3}, {3, 1},
		}},
		{"2x1", 2, 1, [][2]int{{1, 1}, {2, 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := supportSizePairs(tc.n1, tc.n2)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("supportSizePairs(%d, %d) = %v, expected %v",
					tc.n1, tc.n2, got, tc.expected)
			}
		})
	}
}

// checkEquilibrium independently verifies the best-response conditions
// from the returned probabilities and the original payoff matrix: every
// in-support action earns exactly the equilibrium value, every other
// action at most that, and each strategy is a probability distribution.
func checkEquilibrium(t *testing.T, g *MatrixGame, eq *Equilibrium) {
	t.Helper()

	for player := range eq.Supports {
		total := 0.0
		for a, p := range eq.Strategies[player] {
			if p < -testTol {
				t.Errorf("player %d action %v has negative probability %v", player, a, p)
			}
			if !containsAction(eq.Supports[player], a) {
				t.Errorf("player %d strategy assigns probability to %v outside the support", player, a)
			}
			total += p
		}
		if math.Abs(total-1) > testTol {
			t.Errorf("player %d probabilities sum to %v, expected 1", player, total)
		}

		for _, a := range g.Actions(player) {
			ev := expectedPayoff(g, eq, player, a)
			inSupport := containsAction(eq.Supports[player], a)
			if inSupport && math.Abs(ev-eq.Values[player]) > testTol {
				t.Errorf("player %d in-support action %v earns %v, expected value %v",
					player, a, ev, eq.Values[player])
			}
			if !inSupport && ev > eq.Values[player]+testTol {
				t.Errorf("player %d out-of-support action %v earns %v, beating value %v",
					player, a, ev, eq.Values[player])
			}
		}
	}
}

// expectedPayoff is the given player's expected payoff for playing a
// against the opponent's equilibrium mixture.
func expectedPayoff(g *MatrixGame, eq *Equilibrium, player int, a Action) float64 {
	opp := 1 - player
	ev := 0.0
	for _, b := range eq.Supports[opp] {
		p := eq.Strategies[opp][b]
		if player == Player0 {
			ev += p * g.Payoff(player, a, b)
		} else {
			ev += p * g.Payoff(player, b, a)
		}
	}
	return ev
}

func TestSolve_TrivialGame(t *testing.T) {
	g, err := NewMatrixGame([][]float64{{7}}, [][]float64{{-2}})
	if err != nil {
		t.Fatal(err)
	}

	eq, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}

	if eq.SizePairIndex != 0 {
		t.Errorf("SizePairIndex = %d, expected 0", eq.SizePairIndex)
	}
	for player, expected := range []float64{7, -2} {
		if math.Abs(eq.Values[player]-expected) > testTol {
			t.Errorf("player %d value = %v, expected %v", player, eq.Values[player], expected)
		}
	}
	checkEquilibrium(t, g, eq)
}

func TestSolve_BattleOfTheSexes(t *testing.T) {
	g, err := NewMatrixGame(
		[][]float64{{2, 0}, {0, 1}},
		[][]float64{{1, 0}, {0, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}

	eq, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	checkEquilibrium(t, g, eq)

	// The two pure profiles (0, 0) and (1, 1) are equilibria with
	// singleton supports; one of them must be found first.
	if eq.SizePairIndex != 0 {
		t.Errorf("SizePairIndex = %d, expected 0", eq.SizePairIndex)
	}
	if len(eq.Supports[0]) != 1 || len(eq.Supports[1]) != 1 {
		t.Fatalf("supports %v, expected singletons", eq.Supports)
	}
	if eq.Supports[0][0] != eq.Supports[1][0] {
		t.Errorf("supports %v do not form a coordinated profile", eq.Supports)
	}
}

func TestSolve_PrisonersDilemma(t *testing.T) {
	g, err := NewMatrixGame(
		[][]float64{{3, 0}, {5, 1}},
		[][]float64{{3, 5}, {0, 1}},
	)
	if err != nil {
		t.Fatal(err)
	}

	eq, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	checkEquilibrium(t, g, eq)

	expected := [2][]Action{{1}, {1}}
	if !reflect.DeepEqual(eq.Supports, expected) {
		t.Errorf("supports = %v, expected mutual defection %v", eq.Supports, expected)
	}
	for player := range eq.Values {
		if math.Abs(eq.Values[player]-1) > testTol {
			t.Errorf("player %d value = %v, expected 1", player, eq.Values[player])
		}
	}
}

func TestSolve_MatchingPennies(t *testing.T) {
	g, err := NewZeroSumMatrixGame([][]float64{{1, -1}, {-1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	eq, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	checkEquilibrium(t, g, eq)

	// No pure profile is stable, so the (1, 1) pairs are all rejected
	// and the unique equilibrium appears at size pair (2, 2).
	if eq.SizePairIndex != 1 {
		t.Errorf("SizePairIndex = %d, expected 1", eq.SizePairIndex)
	}
	for player := range eq.Strategies {
		if math.Abs(eq.Values[player]) > testTol {
			t.Errorf("player %d value = %v, expected 0", player, eq.Values[player])
		}
		for a, p := range eq.Strategies[player] {
			if math.Abs(p-0.5) > testTol {
				t.Errorf("player %d action %v probability = %v, expected 0.5", player, a, p)
			}
		}
	}
}

func TestSolve_RockPaperScissors(t *testing.T) {
	g, err := NewZeroSumMatrixGame([][]float64{
		{0, -1, 1},
		{1, 0, -1},
		{-1, 1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	eq, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	checkEquilibrium(t, g, eq)

	// The unique equilibrium mixes uniformly over all three actions,
	// found at size pair (3, 3).
	if eq.SizePairIndex != 2 {
		t.Errorf("SizePairIndex = %d, expected 2", eq.SizePairIndex)
	}
	for player := range eq.Strategies {
		for a, p := range eq.Strategies[player] {
			if math.Abs(p-1.0/3.0) > testTol {
				t.Errorf("player %d action %v probability = %v, expected 1/3", player, a, p)
			}
		}
	}
}

func TestSolve_PrunesDominatedColumn(t *testing.T) {
	// Column 2 pays the column player strictly less than column 0
	// against every row, so it is pruned before enumeration and cannot
	// appear in any support.
	g, err := NewMatrixGame(
		[][]float64{{1, 0, 2}, {0, 1, 2}},
		[][]float64{{3, 2, 0}, {1, 3, 0}},
	)
	if err != nil {
		t.Fatal(err)
	}

	eq, err := Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	checkEquilibrium(t, g, eq)

	if containsAction(eq.Supports[Player1], 2) {
		t.Errorf("support %v contains the dominated column", eq.Supports[Player1])
	}
}

type fixedErrSolver struct {
	err error
}

func (s fixedErrSolver) Solve(p *lp.Program) ([]float64, error) {
	return nil, s.err
}

func TestSolve_SolverFailuresDoNotAbort(t *testing.T) {
	g, err := NewMatrixGame([][]float64{{1}}, [][]float64{{1}})
	if err != nil {
		t.Fatal(err)
	}

	searcher := New(Params{Solver: fixedErrSolver{err: errors.New("solver exploded")}})
	_, err = searcher.Solve(g)
	if errors.Cause(err) != ErrNoEquilibrium {
		t.Fatalf("expected ErrNoEquilibrium cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed") {
		t.Errorf("error %q does not report the solver failures", err)
	}
}

func TestSolve_ExhaustionIsDistinguishable(t *testing.T) {
	g, err := NewMatrixGame([][]float64{{1}}, [][]float64{{1}})
	if err != nil {
		t.Fatal(err)
	}

	searcher := New(Params{Solver: fixedErrSolver{err: lp.ErrInfeasible}})
	_, err = searcher.Solve(g)
	if err != ErrNoEquilibrium {
		t.Fatalf("expected ErrNoEquilibrium, got %v", err)
	}
}
