// Package nash finds a mixed-strategy Nash equilibrium of a two-player,
// finite, general-sum strategic-form game by support enumeration,
// following Algorithm 1 of:
//
//	Porter, R.; Nudelman, E.; Shoham, Y. Simple search methods for finding
//	a Nash equilibrium. Games and Economic Behavior, 63, 642-662, 2008.
//
// Candidate supports are enumerated smallest and most balanced first,
// pruned with conditional-dominance tests, and checked with a linear
// feasibility program solved by a pluggable lp.Solver.
package nash

// Player indices of the row and column player.
const (
	Player0 = 0
	Player1 = 1
)

// Action is a stable identifier for one pure strategy of one player.
// Actions are compared by value, never by position in a slice, so that
// pruning a candidate list cannot change what the surviving entries mean.
type Action int

// Strategy maps each action in a support to the probability with which
// it is played. Probabilities are non-negative and sum to one over the
// support, up to solver tolerance.
type Strategy map[Action]float64

// Equilibrium is a mixed-strategy Nash equilibrium restricted to one
// support per player. Every action in a support is a best response with
// expected payoff Values[i]; every action outside the support earns at
// most Values[i] against the opponent's mixture.
type Equilibrium struct {
	// Supports holds the actions played with positive probability,
	// in each player's action-set order.
	Supports [2][]Action
	// Strategies holds the probability assigned to each support action.
	Strategies [2]Strategy
	// Values holds each player's expected payoff under the profile.
	Values [2]float64
	// SizePairIndex is the position of the winning support-size pair in
	// the search ordering. Diagnostic only.
	SizePairIndex int
}

// SolutionStore persists solved equilibria, keyed by a game's canonical
// binary encoding. On-disk implementations are provided by the ldbcache
// and rdbcache packages.
type SolutionStore interface {
	// Get returns the stored equilibrium for key, if any.
	Get(key []byte) (*Equilibrium, bool, error)
	// Put stores eq under key, replacing any previous entry.
	Put(key []byte, eq *Equilibrium) error
	// Close releases resources held by the store.
	Close() error
}
