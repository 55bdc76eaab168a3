package service

import (
	"context"
	"fmt"

	"github.com/fatih/semgroup"

	"wordtiles/internal/lexicon"
	"wordtiles/internal/validation"
)

// PlayLimits bounds the input accepted by PlayService
type PlayLimits struct {
	MaxWordLength int
	MaxTrayLength int
	Workers       int
}

// PlayService answers word questions against the served dictionaries
type PlayService struct {
	registry *Registry
	limits   PlayLimits
}

// CandidateResult holds the candidates for one board word
type CandidateResult struct {
	Word       string   `json:"word"`
	Candidates []string `json:"candidates"`
}

// NewPlayService creates a new play service
func NewPlayService(registry *Registry, limits PlayLimits) *PlayService {
	if limits.Workers < 1 {
		limits.Workers = 1
	}
	return &PlayService{registry: registry, limits: limits}
}

// Check reports whether word is in the dictionary
func (s *PlayService) Check(dictionary, word string) (bool, error) {
	idx, err := s.lookup(dictionary, word)
	if err != nil {
		return false, err
	}
	return idx.IsValid(word), nil
}

// Anagrams returns every dictionary word spelled with the letters of word
func (s *PlayService) Anagrams(dictionary, word string) ([]string, error) {
	idx, err := s.lookup(dictionary, word)
	if err != nil {
		return nil, err
	}
	return idx.Anagrams(word), nil
}

// Candidates returns the words formed by adding tray tiles to either end
// of word
func (s *PlayService) Candidates(dictionary, word, tray string) ([]string, error) {
	idx, err := s.lookup(dictionary, word)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateTray(tray, s.limits.MaxTrayLength); err != nil {
		return nil, err
	}
	return idx.Suggest(word, tray), nil
}

// CandidatesMany runs Candidates for several board words with the same
// tray. Results are in the order of words.
func (s *PlayService) CandidatesMany(ctx context.Context, dictionary string, words []string, tray string) ([]CandidateResult, error) {
	idx, err := s.registry.Get(dictionary)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, validation.ValidationError{Field: "words", Message: "at least one word is required"}
	}
	for _, word := range words {
		if err := validation.ValidateWord(word, s.limits.MaxWordLength); err != nil {
			return nil, err
		}
	}
	if err := validation.ValidateTray(tray, s.limits.MaxTrayLength); err != nil {
		return nil, err
	}

	// one enumeration serves every word
	combos := lexicon.TrayOptions(tray)

	results := make([]CandidateResult, len(words))
	g := semgroup.NewGroup(ctx, int64(s.limits.Workers))
	for i, word := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = CandidateResult{Word: word, Candidates: idx.Candidates(word, combos)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to find candidates: %w", err)
	}
	return results, nil
}

func (s *PlayService) lookup(dictionary, word string) (*lexicon.Index, error) {
	idx, err := s.registry.Get(dictionary)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateWord(word, s.limits.MaxWordLength); err != nil {
		return nil, err
	}
	return idx, nil
}
