// Package bolt is a lexicon backed by a BoltDB file.
//
// Entries are stored as JSON EntrySpecs keyed by name in a single
// bucket.  Static builds a fresh machine on each call, so callers can
// never modify what's stored.
package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Comcast/cxg/graph"
	"github.com/Comcast/cxg/lexicon"

	bolt "go.etcd.io/bbolt"
)

// DefaultBucket is the bucket used when Store.Bucket is empty.
var DefaultBucket = "lexicon"

// NotOpen is returned by operations on a Store that isn't open.
var NotOpen = errors.New("lexicon store not open")

type Store struct {
	Debug bool

	// Bucket is the name of the bucket holding entries.
	Bucket string

	filename string
	db       *bolt.DB
}

func NewStore(filename string) *Store {
	return &Store{
		Bucket:   DefaultBucket,
		filename: filename,
	}
}

func (s *Store) Open() error {
	opts := &bolt.Options{
		Timeout: time.Second,
	}

	db, err := bolt.Open(s.filename, 0644, opts)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) logf(format string, args ...interface{}) {
	if s.Debug {
		log.Printf("BoltDB lexicon."+format, args...)
	}
}

func (s *Store) bucket() []byte {
	if s.Bucket == "" {
		return []byte(DefaultBucket)
	}
	return []byte(s.Bucket)
}

// Put writes (or overwrites) entries.
func (s *Store) Put(ctx context.Context, es ...*lexicon.EntrySpec) error {
	if s.db == nil {
		return NotOpen
	}
	vals := make(map[string][]byte, len(es))
	for _, e := range es {
		if e.Name == "" {
			return lexicon.MissingName
		}
		js, err := json.Marshal(e)
		if err != nil {
			return err
		}
		vals[e.Name] = js
	}
	s.logf("Put %d entries", len(vals))

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket())
		if err != nil {
			return err
		}
		for name, js := range vals {
			if err := b.Put([]byte(name), js); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load writes every entry of a lexicon.Spec.
func (s *Store) Load(ctx context.Context, spec *lexicon.Spec) error {
	es := make([]*lexicon.EntrySpec, 0, len(spec.Entries))
	for _, e := range spec.Entries {
		if e != nil {
			es = append(es, e)
		}
	}
	return s.Put(ctx, es...)
}

// Remove deletes the named entries.  Missing names are ignored.
func (s *Store) Remove(ctx context.Context, names ...string) error {
	if s.db == nil {
		return NotOpen
	}
	s.logf("Remove %v", names)
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket())
		if b == nil {
			return nil
		}
		for _, name := range names {
			if err := b.Delete([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Get returns the named entry or nil if there isn't one.
func (s *Store) Get(ctx context.Context, name string) (*lexicon.EntrySpec, error) {
	if s.db == nil {
		return nil, NotOpen
	}
	var e *lexicon.EntrySpec
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket())
		if b == nil {
			return nil
		}
		js := b.Get([]byte(name))
		if js == nil {
			return nil
		}
		e = &lexicon.EntrySpec{}
		return json.Unmarshal(js, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Static implements lexicon.Lexicon.  Errors are logged and reported
// as a missing entry.
func (s *Store) Static(name string) (*graph.Machine, bool) {
	e, err := s.Get(context.Background(), name)
	if err != nil {
		log.Printf("warning: lexicon Static %s: %v", name, err)
		return nil, false
	}
	if e == nil {
		return nil, false
	}
	m, err := e.Machine()
	if err != nil {
		log.Printf("warning: lexicon Static %s: %v", name, err)
		return nil, false
	}
	return m, true
}

// Each implements lexicon.Lexicon.  Entries are visited in key order.
//
// The read transaction is closed before f is called, so f can use the
// Store.
func (s *Store) Each(f func(string, *graph.Machine) error) error {
	if s.db == nil {
		return NotOpen
	}
	var (
		names = make([]string, 0, 32)
		es    = make([]*lexicon.EntrySpec, 0, 32)
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket())
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, js := c.First(); k != nil; k, js = c.Next() {
			var e lexicon.EntrySpec
			if err := json.Unmarshal(js, &e); err != nil {
				return err
			}
			names = append(names, string(k))
			es = append(es, &e)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logf("Each found %d entries", len(es))

	for i, e := range es {
		m, err := e.Machine()
		if err != nil {
			return err
		}
		if err = f(names[i], m); err != nil {
			return err
		}
	}
	return nil
}

// Expand implements lexicon.Lexicon.
func (s *Store) Expand(m *graph.Machine) error {
	return lexicon.Expand(s, m)
}
