package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"wordtiles/internal/models"
)

// memoryStore is an in-memory DictionaryStore
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	dicts  map[string]*models.Dictionary
	words  map[int64][]string
	failOn string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		dicts: make(map[string]*models.Dictionary),
		words: make(map[int64][]string),
	}
}

var errStore = errors.New("store unavailable")

func (m *memoryStore) Create(ctx context.Context, dict *models.Dictionary, words []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "create" {
		return errStore
	}
	m.nextID++
	dict.ID = m.nextID
	dict.WordCount = len(words)
	dict.CreatedAt = time.Now()
	stored := *dict
	m.dicts[dict.Name] = &stored
	m.words[dict.ID] = slices.Clone(words)
	return nil
}

func (m *memoryStore) GetByName(ctx context.Context, name string) (*models.Dictionary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn == "get" {
		return nil, errStore
	}
	d, ok := m.dicts[name]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (m *memoryStore) GetByChecksum(ctx context.Context, checksum string) (*models.Dictionary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *models.Dictionary
	for _, d := range m.dicts {
		if d.Checksum == checksum && (found == nil || d.ID < found.ID) {
			found = d
		}
	}
	if found == nil {
		return nil, nil
	}
	copied := *found
	return &copied, nil
}

func (m *memoryStore) List(ctx context.Context) ([]models.Dictionary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var dicts []models.Dictionary
	for _, d := range m.dicts {
		dicts = append(dicts, *d)
	}
	slices.SortFunc(dicts, func(a, b models.Dictionary) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return dicts, nil
}

func (m *memoryStore) Words(ctx context.Context, dictionaryID int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.words[dictionaryID]), nil
}

func (m *memoryStore) Delete(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dicts[name]
	if !ok {
		return false, nil
	}
	delete(m.words, d.ID)
	delete(m.dicts, name)
	return true, nil
}
