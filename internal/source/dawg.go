package source

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/smhanov/dawg"
)

// DAWG reads a compiled directed acyclic word graph. A graph stores every
// spelling once in sorted order, so the word list it yields is sorted and
// free of duplicates whatever the original list looked like.
type DAWG struct {
	Path string
}

func (d *DAWG) Load(ctx context.Context) (string, error) {
	finder, err := dawg.Load(d.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open word graph %s: %w", d.Path, err)
	}
	defer finder.Close()

	// index is the insertion position, which is alphabetical order
	words := make([]string, finder.NumAdded())
	finder.Enumerate(func(index int, word []rune, final bool) int {
		if err := ctx.Err(); err != nil {
			return dawg.Stop
		}
		if final && len(word) > 0 && index < len(words) {
			words[index] = string(word)
		}
		return dawg.Continue
	})
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return strings.Join(words, "\n"), nil
}

func (d *DAWG) String() string {
	return d.Path
}

// CompileDAWG writes words to path as a word graph and returns how many
// distinct words it holds. Blank entries are skipped.
func CompileDAWG(words []string, path string) (int, error) {
	sorted := slices.DeleteFunc(slices.Clone(words), func(w string) bool { return w == "" })
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	builder := dawg.New()
	for _, word := range sorted {
		builder.Add(word)
	}
	if _, err := builder.Finish().Save(path); err != nil {
		return 0, fmt.Errorf("failed to save word graph %s: %w", path, err)
	}
	return len(sorted), nil
}
