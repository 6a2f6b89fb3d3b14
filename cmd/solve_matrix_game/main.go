// Command solve_matrix_game finds one Nash equilibrium of a two-player
// strategic-form game given as a JSON payoff file.
//
// The input file holds either both players' payoff matrices:
//
//	{"u0": [[2, 0], [0, 1]], "u1": [[1, 0], [0, 2]]}
//
// or a single matrix "u" for a zero-sum game.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/go-nash"
	"github.com/timpalpant/go-nash/ldbcache"
)

type gameFile struct {
	U0 [][]float64 `json:"u0"`
	U1 [][]float64 `json:"u1"`
	U  [][]float64 `json:"u"`
}

func main() {
	gamePath := flag.String("game", "", "Path to the JSON payoff file")
	cacheDir := flag.String("cache", "", "Optional LevelDB directory of previously solved games")
	flag.Parse()

	if *gamePath == "" {
		fmt.Fprintln(os.Stderr, "usage: solve_matrix_game -game payoffs.json [-cache dir]")
		os.Exit(2)
	}

	game, err := loadGame(*gamePath)
	if err != nil {
		glog.Exit(err)
	}

	searcher := nash.New(nash.Params{})
	var eq *nash.Equilibrium
	if *cacheDir != "" {
		store, err := ldbcache.New(*cacheDir, nil)
		if err != nil {
			glog.Exit(err)
		}
		defer store.Close()
		eq, err = searcher.SolveCached(game, store)
		if err != nil {
			glog.Exit(err)
		}
	} else {
		eq, err = searcher.Solve(game)
		if err != nil {
			glog.Exit(err)
		}
	}

	for player := range eq.Supports {
		fmt.Printf("Player %d (value %v):\n", player, eq.Values[player])
		for _, a := range eq.Supports[player] {
			fmt.Printf("  action %d: p = %v\n", a, eq.Strategies[player][a])
		}
	}
}

func loadGame(path string) (*nash.MatrixGame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var spec gameFile
	if err := json.NewDecoder(f).Decode(&spec); err != nil {
		return nil, err
	}

	if spec.U != nil {
		return nash.NewZeroSumMatrixGame(spec.U)
	}
	return nash.NewMatrixGame(spec.U0, spec.U1)
}
