package archive

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("archive: maze not found")

var keyPrefix = []byte("maze/")

func recordKey(id uuid.UUID) []byte {
	return append(append([]byte{}, keyPrefix...), id.String()...)
}

// Store is a Badger-backed maze archive.
type Store struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens (creating if needed) the archive in dir. An empty dir keeps
// everything in memory.
func Open(dir string) (*Store, error) {
	dbOpts := badger.DefaultOptions(dir)
	dbOpts.Logger = badgerLogger{}
	if dir == "" {
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "archive: opening %q", dir)
	}
	klog.V(1).Infof("archive: opened (dir=%q, in-memory=%v)", dir, dbOpts.InMemory)

	return &Store{db: db, now: time.Now}, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "archive: close")
}

// Put stores rec and returns its ID. A zero ID is replaced by a fresh
// random UUID and a zero CreatedAt by the current time. Putting a record
// with an existing ID overwrites it.
func (s *Store) Put(rec Record) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	buf, err := json.Marshal(rec)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "archive: encoding record")
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(rec.ID), buf)
	})
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "archive: storing %s", rec.ID)
	}
	klog.V(2).Infof("archive: stored %s (%dx%d %s)", rec.ID, rec.Height, rec.Width, rec.Method)

	return rec.ID, nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *Store) Get(id uuid.UUID) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Record{}, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return Record{}, errors.Wrapf(err, "archive: loading %s", id)
	}

	return rec, nil
}

// List returns every record, oldest first. Records created at the same
// instant are ordered by ID.
func (s *Store) List() ([]Record, error) {
	var recs []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         keyPrefix,
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if !bytes.HasPrefix(item.Key(), keyPrefix) {
				continue
			}
			var rec Record
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return errors.Wrapf(err, "key %s", item.Key())
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "archive: listing")
	}

	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.Before(recs[j].CreatedAt)
		}
		return recs[i].ID.String() < recs[j].ID.String()
	})

	return recs, nil
}

// Delete removes the record with the given ID, or returns ErrNotFound.
func (s *Store) Delete(id uuid.UUID) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key := recordKey(id)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}

	return errors.Wrapf(err, "archive: deleting %s", id)
}

// badgerLogger routes Badger's own logging through klog.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{})   { klog.Errorf("badger: "+format, args...) }
func (badgerLogger) Warningf(format string, args ...interface{}) { klog.Warningf("badger: "+format, args...) }
func (badgerLogger) Infof(format string, args ...interface{})    { klog.V(3).Infof("badger: "+format, args...) }
func (badgerLogger) Debugf(format string, args ...interface{})   { klog.V(4).Infof("badger: "+format, args...) }
