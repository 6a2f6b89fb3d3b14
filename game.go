package nash

import (
	"fmt"

	"github.com/pkg/errors"
)

// MatrixGame is an immutable two-player strategic-form game: one ordered
// action set per player and a pair of real payoffs for every joint action.
// It is constructed once, validated up front, and only read during search.
type MatrixGame struct {
	actions [2][]Action
	index   [2]map[Action]int
	// u[i][a0][a1] is player i's payoff when the row player plays their
	// a0'th action and the column player their a1'th.
	u [2][][]float64
}

// NewMatrixGame builds a game from the two players' payoff matrices.
// u0[i][j] and u1[i][j] are the payoffs to player 0 and player 1 when the
// row player plays their i'th action and the column player their j'th.
// Both matrices must be rectangular, non-empty, and equal in shape.
// Actions are numbered 0..n-1 per player in matrix order.
func NewMatrixGame(u0, u1 [][]float64) (*MatrixGame, error) {
	if err := validatePayoffs(u0, u1); err != nil {
		return nil, err
	}

	g := &MatrixGame{u: [2][][]float64{u0, u1}}
	for player, n := range []int{len(u0), len(u0[0])} {
		g.actions[player] = make([]Action, n)
		g.index[player] = make(map[Action]int, n)
		for i := 0; i < n; i++ {
			a := Action(i)
			g.actions[player][i] = a
			g.index[player][a] = i
		}
	}

	return g, nil
}

// NewZeroSumMatrixGame builds a game in which player 1's payoff is the
// negation of player 0's, given by u.
func NewZeroSumMatrixGame(u [][]float64) (*MatrixGame, error) {
	u1 := make([][]float64, len(u))
	for i, row := range u {
		u1[i] = make([]float64, len(row))
		for j, v := range row {
			u1[i][j] = -v
		}
	}

	return NewMatrixGame(u, u1)
}

func validatePayoffs(u0, u1 [][]float64) error {
	if len(u0) == 0 {
		return errors.New("nash: player 0 has no actions")
	}
	if len(u0[0]) == 0 {
		return errors.New("nash: player 1 has no actions")
	}
	nCols := len(u0[0])
	for i, row := range u0 {
		if len(row) != nCols {
			return errors.Errorf("nash: payoff matrix for player 0 is ragged: "+
				"row %d has %d entries, expected %d", i, len(row), nCols)
		}
	}
	if len(u1) != len(u0) {
		return errors.Errorf("nash: payoff matrices differ in shape: "+
			"%d rows vs %d rows", len(u0), len(u1))
	}
	for i, row := range u1 {
		if len(row) != nCols {
			return errors.Errorf("nash: payoff matrix for player 1 is ragged: "+
				"row %d has %d entries, expected %d", i, len(row), nCols)
		}
	}
	return nil
}

// NumActions returns the number of actions available to the given player.
func (g *MatrixGame) NumActions(player int) int {
	return len(g.actions[player])
}

// Actions returns a copy of the given player's ordered action set.
func (g *MatrixGame) Actions(player int) []Action {
	result := make([]Action, len(g.actions[player]))
	copy(result, g.actions[player])
	return result
}

// Payoff returns the given player's payoff when player 0 plays a0 and
// player 1 plays a1. It panics if either action does not belong to the
// corresponding player's action set.
func (g *MatrixGame) Payoff(player int, a0, a1 Action) float64 {
	i, ok := g.index[Player0][a0]
	if !ok {
		panic(fmt.Sprintf("nash: action %v does not belong to player 0", a0))
	}
	j, ok := g.index[Player1][a1]
	if !ok {
		panic(fmt.Sprintf("nash: action %v does not belong to player 1", a1))
	}
	return g.u[player][i][j]
}

// utility is player's own payoff for playing own against opponent action
// opp, with the matrix orientation resolved by player index.
func (g *MatrixGame) utility(player int, own, opp Action) float64 {
	if player == Player0 {
		return g.u[Player0][g.index[Player0][own]][g.index[Player1][opp]]
	}
	return g.u[Player1][g.index[Player0][opp]][g.index[Player1][own]]
}

// actionsAt maps combination indices into the given action slice.
func actionsAt(actions []Action, indices []int, dst []Action) []Action {
	dst = dst[:0]
	for _, i := range indices {
		dst = append(dst, actions[i])
	}
	return dst
}

func containsAction(actions []Action, a Action) bool {
	for _, b := range actions {
		if b == a {
			return true
		}
	}
	return false
}
