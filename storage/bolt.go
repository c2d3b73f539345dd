package storage

import (
	bolt "go.etcd.io/bbolt"
)

var bucketSaves = []byte("saves")

// BoltStore is a Store backed by a bolt database file, one bucket of save
// blobs keyed by logical name.
type BoltStore struct {
	db *bolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore opens (creating if needed) the database at path.
func NewBoltStore(path string) (st *BoltStore, err error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, berr := tx.CreateBucketIfNotExists(bucketSaves)
		return berr
	})
	if err != nil {
		db.Close()
		return
	}

	st = &BoltStore{db: db}

	return
}

// Close closes the underlying database.
func (st *BoltStore) Close() (err error) {
	err = st.db.Close()

	return
}

func (st *BoltStore) Get(name string) (value string, ok bool) {
	st.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSaves).Get([]byte(name)); v != nil {
			value = string(v)
			ok = true
		}
		return nil
	})

	return
}

func (st *BoltStore) Set(name string, value string) (err error) {
	err = st.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSaves).Put([]byte(name), []byte(value))
	})

	return
}

func (st *BoltStore) Delete(name string) (err error) {
	err = st.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSaves).Delete([]byte(name))
	})

	return
}

func (st *BoltStore) Has(name string) (ok bool) {
	st.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket(bucketSaves).Get([]byte(name)) != nil
		return nil
	})

	return
}
