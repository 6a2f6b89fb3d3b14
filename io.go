package nash

import (
	"bytes"
	"encoding/gob"
	"io"
)

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is
// canonical for a given game and doubles as the SolutionStore key.
func (g *MatrixGame) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	for player := range g.actions {
		if err := enc.Encode(g.actions[player]); err != nil {
			return nil, err
		}
	}
	for player := range g.u {
		if err := enc.Encode(g.u[player]); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (g *MatrixGame) UnmarshalBinary(buf []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(buf))

	for player := range g.actions {
		if err := dec.Decode(&g.actions[player]); err != nil {
			return err
		}
	}
	for player := range g.u {
		if err := dec.Decode(&g.u[player]); err != nil {
			return err
		}
	}

	for player := range g.actions {
		g.index[player] = make(map[Action]int, len(g.actions[player]))
		for i, a := range g.actions[player] {
			g.index[player][a] = i
		}
	}

	return nil
}

// MarshalTo writes the equilibrium to w in gob format.
func (eq *Equilibrium) MarshalTo(w io.Writer) error {
	return gob.NewEncoder(w).Encode(eq)
}

// LoadEquilibrium reads an equilibrium previously written with MarshalTo.
func LoadEquilibrium(r io.Reader) (*Equilibrium, error) {
	var eq Equilibrium
	if err := gob.NewDecoder(r).Decode(&eq); err != nil {
		return nil, err
	}

	return &eq, nil
}
