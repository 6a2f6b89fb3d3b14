package nash

import (
	"bytes"
	"reflect"
	"testing"
)

func TestMatrixGame_BinaryRoundTrip(t *testing.T) {
	g, err := NewMatrixGame(
		[][]float64{{2, 0}, {0, 1}},
		[][]float64{{1, 0}, {0, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}

	buf, err := g.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var decoded MatrixGame
	if err := decoded.UnmarshalBinary(buf); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(decoded.Actions(Player0), g.Actions(Player0)) ||
		!reflect.DeepEqual(decoded.Actions(Player1), g.Actions(Player1)) {
		t.Error("action sets did not survive the round trip")
	}
	for player := 0; player < 2; player++ {
		for _, a0 := range g.Actions(Player0) {
			for _, a1 := range g.Actions(Player1) {
				if decoded.Payoff(player, a0, a1) != g.Payoff(player, a0, a1) {
					t.Errorf("payoff(%d, %v, %v) did not survive the round trip", player, a0, a1)
				}
			}
		}
	}
}

// The encoding is used as the SolutionStore key, so it must be
// deterministic for a given game.
func TestMatrixGame_MarshalIsDeterministic(t *testing.T) {
	g, err := NewZeroSumMatrixGame([][]float64{{1, -1}, {-1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	first, err := g.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("two encodings of the same game differ")
	}
}

func TestEquilibrium_RoundTrip(t *testing.T) {
	eq := &Equilibrium{
		Supports:      [2][]Action{{0, 1}, {1}},
		Strategies:    [2]Strategy{{0: 0.25, 1: 0.75}, {1: 1}},
		Values:        [2]float64{1.5, -0.5},
		SizePairIndex: 3,
	}

	var buf bytes.Buffer
	if err := eq.MarshalTo(&buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := LoadEquilibrium(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(decoded, eq) {
		t.Errorf("round-tripped equilibrium %+v, expected %+v", decoded, eq)
	}
}
