package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/boltdb/bolt"
	"github.com/convox/refsort/pkg/helpers"
	"github.com/convox/refsort/pkg/structs"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

const (
	DefaultLimit = 20
)

var (
	bucketRoot    = []byte("refsort")
	bucketHistory = []byte("history")
)

// Store keeps a log of performed sorts in a bolt database. Keys are sortable
// timestamps so a reverse cursor walk yields the newest records first.
type Store struct {
	db   *bolt.DB
	lock sync.Mutex
	now  func() time.Time
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.WithStack(err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "could not open history %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRoot)
		if err != nil {
			return err
		}
		_, err = b.CreateBucketIfNotExists(bucketHistory)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.WithStack(err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores r, filling in the id and creation time when unset.
func (s *Store) Record(r structs.SortRecord) (*structs.SortRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if r.Id == "" {
		r.Id = uuid.NewV4().String()
	}

	if r.Created.IsZero() {
		r.Created = s.now().UTC()
	}

	data, err := json.Marshal(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	key := []byte(fmt.Sprintf("%s.%s", r.Created.UTC().Format(helpers.SortableTime), r.Id))

	err = s.bucket(true, func(b *bolt.Bucket) error {
		return b.Put(key, data)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &r, nil
}

// List returns up to limit records, newest first. A limit of zero or less
// uses DefaultLimit.
func (s *Store) List(limit int) (structs.SortRecords, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rs := structs.SortRecords{}

	err := s.bucket(false, func(b *bolt.Bucket) error {
		c := b.Cursor()

		for k, v := c.Last(); k != nil && len(rs) < limit; k, v = c.Prev() {
			var r structs.SortRecord

			if err := json.Unmarshal(v, &r); err != nil {
				return errors.Wrapf(err, "invalid record: %s", k)
			}

			rs = append(rs, r)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rs, nil
}

func (s *Store) bucket(write bool, fn func(*bolt.Bucket) error) error {
	h := func(tx *bolt.Tx) error {
		return fn(tx.Bucket(bucketRoot).Bucket(bucketHistory))
	}

	if write {
		return s.db.Update(h)
	}

	return s.db.View(h)
}
