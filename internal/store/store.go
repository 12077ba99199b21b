// SPDX-License-Identifier: MIT

// Package store caches classification results in a badger database keyed by
// an xxhash fingerprint of the reaction text.
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/rxnclass/molgraph"
	"github.com/katalvlaran/rxnclass/notation"
	"github.com/katalvlaran/rxnclass/reac"
	"github.com/katalvlaran/rxnclass/trans"
)

const keyPrefix = "rxn/"

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store: closed")

// Store is a persistent map from reaction fingerprints to results. Get and
// Put may run concurrently; Close must not.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the cache under dir. An empty dir gives an
// in-memory store.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.MetricsEnabled = false
	if dir == "" {
		opts.InMemory = true
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Fingerprint identifies a reaction and the classification variant used on
// it. Text is kept to rule out hash collisions on read.
type Fingerprint struct {
	Sum  uint64
	Text string
}

// FingerprintOf formats the reaction sides in notation, ignoring the id, and
// hashes them together with variant.
func FingerprintOf(rx reac.Reaction, variant string) Fingerprint {
	text := variant + "|" + notation.FormatSide(rx.Reactants) + " >> " + notation.FormatSide(rx.Products)
	return Fingerprint{Sum: xxhash.Sum64String(text), Text: text}
}

func (f Fingerprint) key() []byte {
	k := make([]byte, len(keyPrefix)+8)
	copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[len(keyPrefix):], f.Sum)
	return k
}

// entry is the stored form of a reac.Result.
type entry struct {
	Text            string        `json:"text"`
	Transformations []transRecord `json:"transformations"`
	ReactantOrder   []int         `json:"reactant_order"`
	ProductOrder    []int         `json:"product_order"`
}

type transRecord struct {
	Class  string   `json:"class"`
	Formed [][2]int `json:"formed"`
	Broken [][2]int `json:"broken"`
}

// Get returns the cached result for f. ok is false on a miss.
func (s *Store) Get(f Fingerprint) (res reac.Result, ok bool, err error) {
	if s.db == nil {
		return reac.Result{}, false, ErrClosed
	}
	var e entry
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(f.key())
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return reac.Result{}, false, nil
	}
	if err != nil {
		return reac.Result{}, false, fmt.Errorf("store: get: %w", err)
	}
	if e.Text != f.Text {
		return reac.Result{}, false, nil
	}
	res, err = e.result()
	if err != nil {
		return reac.Result{}, false, fmt.Errorf("store: decode: %w", err)
	}
	return res, true, nil
}

// Put stores res under f, replacing any previous value.
func (s *Store) Put(f Fingerprint, res reac.Result) error {
	if s.db == nil {
		return ErrClosed
	}
	buf, err := json.Marshal(newEntry(f, res))
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(f.key(), buf)
	})
	if err != nil {
		return fmt.Errorf("store: put: %w", err)
	}
	return nil
}

// Len counts the stored results.
func (s *Store) Len() (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

func newEntry(f Fingerprint, res reac.Result) entry {
	e := entry{Text: f.Text, ReactantOrder: res.ReactantOrder, ProductOrder: res.ProductOrder}
	for _, t := range res.Transformations {
		e.Transformations = append(e.Transformations, transRecord{
			Class:  t.Class().String(),
			Formed: pairs(t.Formed()),
			Broken: pairs(t.Broken()),
		})
	}
	return e
}

func (e entry) result() (reac.Result, error) {
	if len(e.Transformations) == 0 {
		return reac.Result{}, nil
	}
	ts := make([]trans.Transformation, 0, len(e.Transformations))
	for _, r := range e.Transformations {
		c, err := trans.ParseClass(r.Class)
		if err != nil {
			return reac.Result{}, err
		}
		ts = append(ts, trans.New(c, bondKeys(r.Formed), bondKeys(r.Broken)))
	}
	return reac.Result{Transformations: ts, ReactantOrder: e.ReactantOrder, ProductOrder: e.ProductOrder}, nil
}

func pairs(bks []molgraph.BondKey) [][2]int {
	out := make([][2]int, len(bks))
	for i, bk := range bks {
		out[i] = [2]int{int(bk.A), int(bk.B)}
	}
	return out
}

func bondKeys(ps [][2]int) []molgraph.BondKey {
	out := make([]molgraph.BondKey, len(ps))
	for i, p := range ps {
		out[i] = molgraph.NewBondKey(molgraph.Key(p[0]), molgraph.Key(p[1]))
	}
	return out
}
