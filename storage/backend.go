package storage

import (
	"errors"
	"sync"
)

var ErrSampleNotFound = errors.New("sample not found")

// Backend stores one encoded merged record per sample.
type Backend interface {
	Get(sample string) ([]byte, error)
	Put(sample string, buf []byte) error
	Delete(sample string) error
	IterateKeys(lambda func(string) error) error
	Close() error
}

type InMemoryBackend struct {
	records map[string][]byte
	mu      sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		records: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(sample string) ([]byte, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	buf, ok := backend.records[sample]
	if !ok {
		return nil, ErrSampleNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(sample string, buf []byte) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.records[sample] = buf
	return nil
}

func (backend *InMemoryBackend) Delete(sample string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	delete(backend.records, sample)
	return nil
}

func (backend *InMemoryBackend) IterateKeys(lambda func(string) error) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	for sample := range backend.records {
		if err := lambda(sample); err != nil {
			return err
		}
	}
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.records = nil
	return nil
}
