// Package seqdb is the in-memory, key-indexed sequence store the rescorer
// reads from. Records are encoded into residue codes once, at Open.
package seqdb

import (
	"context"

	"github.com/pkg/errors"

	"rescore-core/fasta"
	"rescore-core/submat"
)

var (
	ErrDuplicateKey = errors.New("seqdb: duplicate key")
	ErrClosed       = errors.New("seqdb: database is closed")
)

// Entry is one stored record. Seq holds residue codes, not letters.
type Entry struct {
	Key  string
	Desc string
	Seq  []byte
	File string
}

// Len is the residue count.
func (e Entry) Len() int { return len(e.Seq) }

// DB maps record keys to encoded sequences. It is read-only after Open and
// safe for concurrent Get calls.
type DB struct {
	entries []Entry
	index   map[string]int
	closed  bool
}

// Open reads every FASTA path in order and encodes each record with m.
// A key seen twice, in the same or another file, is an error.
func Open(ctx context.Context, paths []string, m *submat.Matrix) (*DB, error) {
	db := &DB{index: make(map[string]int, 1024)}
	for _, p := range paths {
		err := fasta.ReadPathCtx(ctx, p, func(r fasta.Record) error {
			if prev, dup := db.index[r.ID]; dup {
				return errors.Wrapf(ErrDuplicateKey, "%s: %q (first seen in %s)", p, r.ID, db.entries[prev].File)
			}
			db.index[r.ID] = len(db.entries)
			db.entries = append(db.entries, Entry{
				Key:  r.ID,
				Desc: r.Desc,
				Seq:  m.Encode(r.Seq),
				File: p,
			})
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrDuplicateKey) || errors.Is(err, context.Canceled) {
				return nil, err
			}
			return nil, errors.Wrapf(err, "open %s", p)
		}
	}
	return db, nil
}

// Get looks up a record by key.
func (db *DB) Get(key string) (Entry, bool) {
	if db == nil || db.closed {
		return Entry{}, false
	}
	i, ok := db.index[key]
	if !ok {
		return Entry{}, false
	}
	return db.entries[i], true
}

// Size is the number of stored records.
func (db *DB) Size() int {
	if db == nil || db.closed {
		return 0
	}
	return len(db.entries)
}

// Close drops the stored records. Closing twice returns ErrClosed.
func (db *DB) Close() error {
	if db.closed {
		return ErrClosed
	}
	db.closed = true
	db.entries = nil
	db.index = nil
	return nil
}
