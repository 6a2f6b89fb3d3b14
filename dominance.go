package nash

// isDominated reports whether action a is conditionally dominated by
// action b for the given player, relative to the opponent action set opp:
// b must yield strictly more than a against every action in opp. A tie
// against any opponent action defeats domination.
//
// An empty opponent set dominates vacuously. The search never tests
// against an empty set, but the convention is fixed here and covered by
// tests so that callers cannot be surprised by it.
func (g *MatrixGame) isDominated(player int, a, b Action, opp []Action) bool {
	for _, o := range opp {
		if g.utility(player, a, o) >= g.utility(player, b, o) {
			return false
		}
	}
	return true
}

// pruneDominated returns the actions in candidates that are not
// conditionally dominated by another candidate, given oppSupport as the
// opponent's fixed action set. The result is a fresh slice preserving the
// relative order of the survivors; candidates is never modified.
//
// Each action is tested against the full original candidate list, so the
// pass is a single sweep and repeated pruning is a no-op: an action that
// survives is dominated by no candidate, and removing other actions
// cannot create new dominations.
func (g *MatrixGame) pruneDominated(player int, candidates, oppSupport []Action) []Action {
	result := make([]Action, 0, len(candidates))
	for _, a := range candidates {
		dominated := false
		for _, b := range candidates {
			if a != b && g.isDominated(player, a, b, oppSupport) {
				dominated = true
				break
			}
		}
		if !dominated {
			result = append(result, a)
		}
	}
	return result
}

// hasDominatedAction reports whether any action in support is
// conditionally dominated by another action in support, given the
// opponent candidates. A singleton support is never self-dominated.
// This is a pure existence test: the search uses it to abandon a support
// before paying for the feasibility program.
func (g *MatrixGame) hasDominatedAction(player int, support, oppCandidates []Action) bool {
	if len(support) <= 1 {
		return false
	}
	for _, a := range support {
		for _, b := range support {
			if a != b && g.isDominated(player, a, b, oppCandidates) {
				return true
			}
		}
	}
	return false
}
