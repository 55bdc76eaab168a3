package source

import (
	"context"
	"fmt"
	"strings"

	"wordtiles/internal/models"
)

// WordStore is the part of the dictionary repository used to read stored
// word lists
type WordStore interface {
	GetByName(ctx context.Context, name string) (*models.Dictionary, error)
	Words(ctx context.Context, dictionaryID int64) ([]string, error)
}

// Database reads a dictionary previously imported into the database
type Database struct {
	Store WordStore
	Name  string
}

func (d *Database) Load(ctx context.Context) (string, error) {
	dict, err := d.Store.GetByName(ctx, d.Name)
	if err != nil {
		return "", err
	}
	if dict == nil {
		return "", fmt.Errorf("dictionary %q not found", d.Name)
	}

	words, err := d.Store.Words(ctx, dict.ID)
	if err != nil {
		return "", err
	}
	return strings.Join(words, "\n"), nil
}

func (d *Database) String() string {
	return "db:" + d.Name
}
