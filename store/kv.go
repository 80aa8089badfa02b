package store

import (
	"errors"

	bolt "go.etcd.io/bbolt"
)

// Storage keys. These match the entries the original shop data was written
// under, so an existing data file round-trips unchanged.
const (
	ordersKey  = "kickcare_orders"
	clientsKey = "kickcare_clients"
)

var bucketName = []byte("juluka")

// ErrCorruptStore is returned when a persisted entry exists but does not
// parse as the expected JSON collection. A missing entry is not corruption;
// it loads as an empty collection.
var ErrCorruptStore = errors.New("persisted store entry is corrupt")

// KV is the flat key-value persistence boundary. Values are whole
// JSON-serialized collections, rewritten in full on every save.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// BoltKV is a file-backed KV implementation over bbolt.
type BoltKV struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the store file at path.
func OpenBolt(path string) (*BoltKV, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltKV{db: db}, nil
}

// Get returns the stored value for key, or nil when the key has never been
// written.
func (b *BoltKV) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	return value, err
}

func (b *BoltKV) Put(key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

func (b *BoltKV) Close() error {
	return b.db.Close()
}
