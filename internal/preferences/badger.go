package preferences

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerKV is the BadgerDB-backed durable key-value collaborator.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) a Badger database at path.
func OpenBadger(path string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening preference database at %s: %w", path, err)
	}
	return &BadgerKV{db: db}, nil
}

// Get reads a key, mapping Badger's not-found to ErrKeyNotFound.
func (b *BadgerKV) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrKeyNotFound
		}
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes a key synchronously.
func (b *BadgerKV) Set(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Close releases the underlying database.
func (b *BadgerKV) Close() error {
	return b.db.Close()
}
