package storage

import (
	"github.com/dgraph-io/badger/v2"
)

// TestBadgerDB returns an in-memory badger instance for tests.
func TestBadgerDB() *badger.DB {
	option := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(option)
	if err != nil {
		panic(err)
	}
	return db
}

// OpenBadgerDB opens the on-disk store at path.
func OpenBadgerDB(path string) (*badger.DB, error) {
	option := badger.DefaultOptions(path).WithLogger(nil)
	return badger.Open(option)
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) Get(sample string) ([]byte, error) {
	var buf []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sample))
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrSampleNotFound
	}
	return buf, err
}

func (backend *BadgerBackend) Put(sample string, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sample), buf)
	})
}

func (backend *BadgerBackend) Delete(sample string) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sample))
	})
}

func (backend *BadgerBackend) IterateKeys(lambda func(string) error) error {
	return backend.db.View(func(txn *badger.Txn) error {
		iterOpts := badger.DefaultIteratorOptions
		iterOpts.PrefetchValues = false
		iter := txn.NewIterator(iterOpts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := lambda(string(iter.Item().Key())); err != nil {
				return err
			}
		}
		return nil
	})
}
