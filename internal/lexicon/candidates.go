package lexicon

import "strings"

// FindCandidates returns the words that extend existing with one of the
// given tile combinations. A word qualifies when it is an anagram of
// existing+combination, differs from existing, and still contains existing
// as a contiguous run, so new tiles only go on the ends.
//
// Results follow combination order, then index order. A word reachable from
// more than one combination is listed once per combination.
func FindCandidates(idx *Index, existing string, combinations []string) []string {
	candidates := []string{}
	for _, combo := range combinations {
		for _, word := range idx.groups[CanonicalKey(existing+combo)] {
			if word == existing || !strings.Contains(word, existing) {
				continue
			}
			candidates = append(candidates, word)
		}
	}
	return candidates
}

// Candidates is FindCandidates on idx.
func (idx *Index) Candidates(existing string, combinations []string) []string {
	return FindCandidates(idx, existing, combinations)
}

// Suggest returns every candidate for existing that can be formed from tray.
func (idx *Index) Suggest(existing, tray string) []string {
	return FindCandidates(idx, existing, TrayOptions(tray))
}
