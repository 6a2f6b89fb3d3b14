package ldbcache

import (
	"bytes"
	"encoding/gob"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/timpalpant/go-nash"
)

// Store is a LevelDB-backed nash.SolutionStore. Keys are game encodings,
// values are gob-encoded equilibria.
type Store struct {
	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

var _ nash.SolutionStore = &Store{}

// New creates a Store backed by a LevelDB database at the given path,
// creating it if necessary.
func New(path string, opts *opt.Options) (*Store, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Get implements nash.SolutionStore.
func (s *Store) Get(key []byte) (*nash.Equilibrium, bool, error) {
	buf, err := s.db.Get(key, s.rOpts)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var eq nash.Equilibrium
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&eq); err != nil {
		return nil, false, err
	}

	return &eq, true, nil
}

// Put implements nash.SolutionStore.
func (s *Store) Put(key []byte, eq *nash.Equilibrium) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(eq); err != nil {
		return err
	}

	return s.db.Put(key, buf.Bytes(), s.wOpts)
}

// Close implements io.Closer.
func (s *Store) Close() error {
	return s.db.Close()
}
