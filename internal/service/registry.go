package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"wordtiles/internal/lexicon"
	"wordtiles/internal/logging"
)

// Registry holds the built index of every dictionary being served. Indexes
// are built once and then only read.
type Registry struct {
	mu          sync.RWMutex
	indexes     map[string]*lexicon.Index
	defaultName string
}

// NewRegistry creates an empty registry. defaultName is used when a
// request does not name a dictionary; empty means the first loaded one.
func NewRegistry(defaultName string) *Registry {
	return &Registry{
		indexes:     make(map[string]*lexicon.Index),
		defaultName: defaultName,
	}
}

// Add registers an index under name, replacing any previous one
func (r *Registry) Add(name string, idx *lexicon.Index) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexes[name] = idx
	if r.defaultName == "" {
		r.defaultName = name
	}
}

// LoadAll builds the indexes for the named stored dictionaries. With no
// names every stored dictionary is loaded.
func (r *Registry) LoadAll(ctx context.Context, dicts *DictionaryService, names []string) error {
	if len(names) == 0 {
		stored, err := dicts.List(ctx)
		if err != nil {
			return err
		}
		for _, d := range stored {
			names = append(names, d.Name)
		}
	}

	indexes := make([]*lexicon.Index, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			words, err := dicts.Words(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to load dictionary %s: %w", name, err)
			}
			indexes[i] = lexicon.Build(words)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range names {
		r.Add(name, indexes[i])
		logging.Info().
			Str("dictionary", name).
			Int("words", indexes[i].WordCount()).
			Int("keys", indexes[i].Len()).
			Msg("loaded dictionary")
	}
	return nil
}

// Get returns the index for name. An empty name selects the default
// dictionary.
func (r *Registry) Get(name string) (*lexicon.Index, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaultName
	}
	idx, ok := r.indexes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, name)
	}
	return idx, nil
}

// Names returns the served dictionary names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.indexes))
	for name := range r.indexes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns the name of the default dictionary
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}
