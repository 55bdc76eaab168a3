package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "empty", word: "", want: ""},
		{name: "single letter", word: "a", want: "a"},
		{name: "already sorted", word: "abt", want: "abt"},
		{name: "unsorted", word: "tab", want: "abt"},
		{name: "repeated letters", word: "banana", want: "aaabnn"},
		{name: "case sensitive", word: "Tab", want: "Tab"},
		{name: "non ascii", word: "ñaa", want: "aañ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalKey(tt.word))
		})
	}
}

func TestCanonicalKeyAnagramEquivalence(t *testing.T) {
	tests := []struct {
		a, b    string
		anagram bool
	}{
		{"listen", "silent", true},
		{"dear", "read", true},
		{"dear", "reads", false},
		{"aab", "abb", false},
		{"Read", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.anagram, CanonicalKey(tt.a) == CanonicalKey(tt.b))
		})
	}
}
