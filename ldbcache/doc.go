// Package ldbcache implements a nash.SolutionStore that keeps solved
// equilibria on disk in a LevelDB database.
//
// Solving a game is far more expensive than a disk lookup, so batch
// workloads that revisit the same payoff matrices can front the search
// with this store via Searcher.SolveCached.
package ldbcache
