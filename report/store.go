package report

import (
	"encoding/json"
	"sort"

	"github.com/dgraph-io/ristretto"

	"isorefine/refine"
	"isorefine/storage"
)

// Store persists merged records through a storage.Backend, with an
// optional ristretto cache in front of decode-on-read.
type Store struct {
	backend      storage.Backend
	cacheEnabled bool
	cache        *ristretto.Cache
}

func NewStore(backend storage.Backend, cacheEnabled bool) *Store {
	cache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})

	return &Store{
		backend:      backend,
		cacheEnabled: cacheEnabled,
		cache:        cache,
	}
}

func (store *Store) Put(sample string, record refine.MergedRecord) error {
	buf, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if store.cacheEnabled {
		store.cache.Set(sample, record, 1)
	}
	return store.backend.Put(sample, buf)
}

func (store *Store) Get(sample string) (refine.MergedRecord, error) {
	if store.cacheEnabled {
		record, found := store.cache.Get(sample)
		if found {
			return record.(refine.MergedRecord), nil
		}
	}
	buf, err := store.backend.Get(sample)
	if err != nil {
		return nil, err
	}
	var record refine.MergedRecord
	if err := json.Unmarshal(buf, &record); err != nil {
		return nil, err
	}
	if store.cacheEnabled {
		store.cache.Set(sample, record, 1)
	}
	return record, nil
}

func (store *Store) PutAll(records map[string]refine.MergedRecord) error {
	for sample, record := range records {
		if err := store.Put(sample, record); err != nil {
			return err
		}
	}
	return nil
}

func (store *Store) Samples() ([]string, error) {
	samples := make([]string, 0)
	err := store.backend.IterateKeys(func(sample string) error {
		samples = append(samples, sample)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(samples)
	return samples, nil
}

func (store *Store) Close() error {
	return store.backend.Close()
}
