package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordtiles/internal/lexicon"
	"wordtiles/internal/validation"
)

func newTestPlayService(t *testing.T) *PlayService {
	t.Helper()
	reg := NewRegistry("")
	reg.Add("test", lexicon.Build([]string{
		"read", "dare", "dear", "bread", "beard", "bared", "debar",
		"ready", "deary", "rayed", "bready",
		"and", "dan", "dna",
	}))
	return NewPlayService(reg, PlayLimits{MaxWordLength: 15, MaxTrayLength: 7, Workers: 2})
}

func TestPlayCheck(t *testing.T) {
	svc := newTestPlayService(t)

	tests := []struct {
		word string
		want bool
	}{
		{"bread", true},
		{"dna", true},
		{"nad", false},
		{"Bread", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := svc.Check("test", tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlayAnagrams(t *testing.T) {
	svc := newTestPlayService(t)

	got, err := svc.Anagrams("test", "nad")
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "dan", "dna"}, got)

	got, err = svc.Anagrams("test", "xyz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlayCandidates(t *testing.T) {
	svc := newTestPlayService(t)

	got, err := svc.Candidates("test", "read", "by")
	require.NoError(t, err)
	assert.Equal(t, []string{"bread", "ready", "bready"}, got)

	got, err = svc.Candidates("test", "read", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlayErrors(t *testing.T) {
	svc := newTestPlayService(t)

	_, err := svc.Check("missing", "read")
	assert.ErrorIs(t, err, ErrDictionaryNotFound)

	tests := []struct {
		name  string
		word  string
		tray  string
		field string
	}{
		{name: "empty word", word: "", tray: "ab", field: "word"},
		{name: "digits in word", word: "re4d", tray: "ab", field: "word"},
		{name: "long tray", word: "read", tray: "abcdefgh", field: "tray"},
		{name: "space in tray", word: "read", tray: "a b", field: "tray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Candidates("test", tt.word, tt.tray)
			var verr validation.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestPlayCandidatesMany(t *testing.T) {
	svc := newTestPlayService(t)

	results, err := svc.CandidatesMany(context.Background(), "test", []string{"read", "dan", "dear", "read"}, "by")
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, CandidateResult{Word: "read", Candidates: []string{"bread", "ready", "bready"}}, results[0])
	assert.Equal(t, "dan", results[1].Word)
	assert.Empty(t, results[1].Candidates)
	assert.Equal(t, "dear", results[2].Word)
	assert.Equal(t, []string{"deary"}, results[2].Candidates)
	assert.Equal(t, results[0], results[3])
}

func TestPlayCandidatesManyValidation(t *testing.T) {
	svc := newTestPlayService(t)

	_, err := svc.CandidatesMany(context.Background(), "test", nil, "ab")
	var verr validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "words", verr.Field)

	_, err = svc.CandidatesMany(context.Background(), "test", []string{"read", "r3ad"}, "ab")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "word", verr.Field)
}
