package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"wordtiles/internal/lexicon"
	"wordtiles/internal/logging"
	"wordtiles/internal/models"
	"wordtiles/internal/validation"
)

var (
	ErrDictionaryNotFound = errors.New("dictionary not found")
	ErrDictionaryExists   = errors.New("dictionary already exists with different words")
)

// DictionaryStore is the storage used by DictionaryService.
// *repository.DictionaryRepository satisfies it.
type DictionaryStore interface {
	Create(ctx context.Context, dict *models.Dictionary, words []string) error
	GetByName(ctx context.Context, name string) (*models.Dictionary, error)
	GetByChecksum(ctx context.Context, checksum string) (*models.Dictionary, error)
	List(ctx context.Context) ([]models.Dictionary, error)
	Words(ctx context.Context, dictionaryID int64) ([]string, error)
	Delete(ctx context.Context, name string) (bool, error)
}

// DictionaryService manages stored word lists
type DictionaryService struct {
	store DictionaryStore
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(store DictionaryStore) *DictionaryService {
	return &DictionaryService{store: store}
}

// Import stores the words of text under name. Importing the same words
// under the same name again returns the stored dictionary unchanged.
func (s *DictionaryService) Import(ctx context.Context, name, text string) (*models.Dictionary, error) {
	if err := validation.ValidateDictionaryName(name); err != nil {
		return nil, err
	}

	words := lexicon.SplitLines(text)
	checksum := Checksum(words)

	existing, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check dictionary: %w", err)
	}
	if existing != nil {
		if existing.Checksum == checksum {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrDictionaryExists, name)
	}

	twin, err := s.store.GetByChecksum(ctx, checksum)
	if err != nil {
		return nil, fmt.Errorf("failed to check dictionary: %w", err)
	}
	if twin != nil {
		logging.Warn().
			Str("dictionary", name).
			Str("same_as", twin.Name).
			Msg("dictionary has the same words as an existing one")
	}

	dict := &models.Dictionary{
		PublicID: uuid.New().String(),
		Name:     name,
		Checksum: checksum,
	}
	if err := s.store.Create(ctx, dict, words); err != nil {
		return nil, fmt.Errorf("failed to import dictionary: %w", err)
	}

	logging.Info().
		Str("dictionary", name).
		Int("words", dict.WordCount).
		Str("checksum", checksum[:12]).
		Msg("imported dictionary")
	return dict, nil
}

// Export returns a stored dictionary as newline-delimited text in its
// original order
func (s *DictionaryService) Export(ctx context.Context, name string) (string, error) {
	words, err := s.Words(ctx, name)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", nil
	}
	return strings.Join(words, "\n") + "\n", nil
}

// Words returns a stored dictionary's words in source order
func (s *DictionaryService) Words(ctx context.Context, name string) ([]string, error) {
	dict, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	words, err := s.store.Words(ctx, dict.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}
	return words, nil
}

// Get retrieves a dictionary by name
func (s *DictionaryService) Get(ctx context.Context, name string) (*models.Dictionary, error) {
	dict, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get dictionary: %w", err)
	}
	if dict == nil {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, name)
	}
	return dict, nil
}

// List returns all stored dictionaries
func (s *DictionaryService) List(ctx context.Context) ([]models.Dictionary, error) {
	dicts, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dictionaries: %w", err)
	}
	return dicts, nil
}

// Delete removes a stored dictionary
func (s *DictionaryService) Delete(ctx context.Context, name string) error {
	deleted, err := s.store.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to delete dictionary: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrDictionaryNotFound, name)
	}

	logging.Info().Str("dictionary", name).Msg("deleted dictionary")
	return nil
}

// Checksum returns the hex blake2b-256 digest of a word list in order.
// Every word is newline-terminated.
func Checksum(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
