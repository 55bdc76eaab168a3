package lexicon

import (
	"slices"
	"strings"
)

// Index maps canonical keys to the dictionary words that share them. Words
// under a key keep the order they appeared in the source list, duplicates
// included.
type Index struct {
	groups map[string][]string
	words  int
}

// Build indexes words. Empty entries are skipped.
func Build(words []string) *Index {
	idx := &Index{groups: make(map[string][]string)}
	for _, word := range words {
		if word == "" {
			continue
		}
		key := CanonicalKey(word)
		idx.groups[key] = append(idx.groups[key], word)
		idx.words++
	}
	return idx
}

// BuildFromText indexes a newline-delimited word list. A trailing carriage
// return on a line is dropped so CRLF files index the same as LF files.
func BuildFromText(text string) *Index {
	return Build(SplitLines(text))
}

// SplitLines splits newline-delimited text into its non-empty lines.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	words := lines[:0]
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			words = append(words, line)
		}
	}
	return words
}

// Anagrams returns every indexed word with the same letters as word, in
// source order. The result is empty, never nil, when nothing matches.
func (idx *Index) Anagrams(word string) []string {
	group := idx.groups[CanonicalKey(word)]
	if len(group) == 0 {
		return []string{}
	}
	return slices.Clone(group)
}

// IsValid reports whether word itself was in the source list. Having
// anagrams in the dictionary is not enough.
func (idx *Index) IsValid(word string) bool {
	return slices.Contains(idx.groups[CanonicalKey(word)], word)
}

// Len returns the number of distinct canonical keys.
func (idx *Index) Len() int {
	return len(idx.groups)
}

// WordCount returns the number of words indexed, duplicates included.
func (idx *Index) WordCount() int {
	return idx.words
}

// Keys returns the canonical keys in sorted order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.groups))
	for key := range idx.groups {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
