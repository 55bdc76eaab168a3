package lexicon

import "slices"

// CanonicalKey returns the letters of word sorted by code point. Two words
// are anagrams iff their keys are equal. Case is preserved.
func CanonicalKey(word string) string {
	runes := []rune(word)
	slices.Sort(runes)
	return string(runes)
}
