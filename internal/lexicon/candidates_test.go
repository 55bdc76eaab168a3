package lexicon

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCandidates(t *testing.T) {
	idx := loadTestIndex(t)

	tests := []struct {
		name     string
		existing string
		tray     string
		want     []string
	}{
		{
			name:     "need additional letters to make new words",
			existing: "read",
			tray:     "",
			want:     []string{},
		},
		{
			name:     "with anagrams",
			existing: "oo",
			tray:     "pl",
			want:     []string{"poo", "loo", "loop", "pool"},
		},
		{
			name:     "only the anagram keeping the board word in order",
			existing: "read",
			tray:     "y",
			want:     []string{"ready"},
		},
		{
			name:     "adding a letter to the prefix",
			existing: "read",
			tray:     "b",
			want:     []string{"bread"},
		},
		{
			name:     "need not use every tile",
			existing: "read",
			tray:     "bc",
			want:     []string{"bread"},
		},
		{
			name:     "prefix then suffix then both",
			existing: "read",
			tray:     "by",
			want:     []string{"bread", "ready", "bready"},
		},
		{
			name:     "lots of candidates",
			existing: "rea",
			tray:     "brdslya",
			want: []string{
				"rear", "read", "bread", "drear", "rears", "reads", "breads", "drears",
				"real", "reals", "ready", "bready", "dreary", "area", "areas", "areal",
				"already", "readably",
			},
		},
		{
			name:     "unknown board word",
			existing: "qqq",
			tray:     "ab",
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindCandidates(idx, tt.existing, TrayOptions(tt.tray)))
			assert.Equal(t, tt.want, idx.Suggest(tt.existing, tt.tray))
		})
	}
}

func TestFindCandidatesNeverReturnsExistingOrInterleaved(t *testing.T) {
	idx := loadTestIndex(t)

	for _, existing := range []string{"rea", "read", "ear", "oo", "dear"} {
		for _, word := range idx.Suggest(existing, "bdlrsya") {
			assert.NotEqual(t, existing, word)
			assert.True(t, strings.Contains(word, existing), "%q does not contain %q", word, existing)
		}
	}
}

func TestFindCandidatesKeepsDuplicatesAcrossCombinations(t *testing.T) {
	idx := Build([]string{"bread"})

	got := FindCandidates(idx, "read", []string{"b", "b"})

	assert.Equal(t, []string{"bread", "bread"}, got)
}

func TestFindCandidatesConcurrentReaders(t *testing.T) {
	idx := loadTestIndex(t)
	want := idx.Suggest("read", "by")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, idx.Suggest("read", "by"))
		}()
	}
	wg.Wait()
}
