package lexicon

// PowerSet returns every distinct combination of letters as a sorted string,
// starting with the empty combination.
//
// Combinations are generated by doubling: for each letter in turn, every
// combination built so far is copied with the letter appended. Repeated
// letters produce repeated combinations, which collapse to the first
// occurrence of their sorted form, so the output order is stable for a
// given input order.
func PowerSet(letters []rune) []string {
	subsets := [][]rune{{}}
	for _, letter := range letters {
		n := len(subsets)
		for i := 0; i < n; i++ {
			next := make([]rune, len(subsets[i]), len(subsets[i])+1)
			copy(next, subsets[i])
			subsets = append(subsets, append(next, letter))
		}
	}

	seen := make(map[string]struct{}, len(subsets))
	options := make([]string, 0, len(subsets))
	for _, subset := range subsets {
		key := CanonicalKey(string(subset))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		options = append(options, key)
	}
	return options
}

// TrayOptions returns every distinct set of tiles that can be played from
// tray, including playing none. Each character of tray is one tile.
func TrayOptions(tray string) []string {
	return PowerSet([]rune(tray))
}
