// Package rdbcache implements a nash.SolutionStore that keeps solved
// equilibria in a RocksDB database.
//
// It is functionally equivalent to ldbcache but builds on RocksDB,
// which requires cgo and an installed librocksdb.
package rdbcache

import (
	"bytes"
	"encoding/gob"

	rocksdb "github.com/tecbot/gorocksdb"

	"github.com/timpalpant/go-nash"
)

type Params struct {
	Path         string
	Options      *rocksdb.Options
	ReadOptions  *rocksdb.ReadOptions
	WriteOptions *rocksdb.WriteOptions
}

func DefaultParams(path string) Params {
	opts := rocksdb.NewDefaultOptions()
	opts.SetCreateIfMissing(true)

	return Params{
		Path:         path,
		Options:      opts,
		ReadOptions:  rocksdb.NewDefaultReadOptions(),
		WriteOptions: rocksdb.NewDefaultWriteOptions(),
	}
}

func (p Params) Close() {
	p.Options.Destroy()
	p.ReadOptions.Destroy()
	p.WriteOptions.Destroy()
}

// Store is a RocksDB-backed nash.SolutionStore. Keys are game encodings,
// values are gob-encoded equilibria.
type Store struct {
	params Params
	db     *rocksdb.DB
}

var _ nash.SolutionStore = &Store{}

// New creates a Store backed by a RocksDB database configured by params.
func New(params Params) (*Store, error) {
	db, err := rocksdb.OpenDb(params.Options, params.Path)
	if err != nil {
		return nil, err
	}

	return &Store{params: params, db: db}, nil
}

// Get implements nash.SolutionStore.
func (s *Store) Get(key []byte) (*nash.Equilibrium, bool, error) {
	result, err := s.db.Get(s.params.ReadOptions, key)
	if err != nil {
		return nil, false, err
	}
	defer result.Free()

	if len(result.Data()) == 0 {
		return nil, false, nil
	}

	var eq nash.Equilibrium
	if err := gob.NewDecoder(bytes.NewReader(result.Data())).Decode(&eq); err != nil {
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

	return s.db.Put(s.params.WriteOptions, key, buf.Bytes())
}

// Close implements io.Closer.
func (s *Store) Close() error {
	s.db.Close()
	return nil
}
