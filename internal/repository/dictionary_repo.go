package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wordtiles/internal/database"
	"wordtiles/internal/models"
)

// DictionaryRepository handles database operations for dictionaries and their words
type DictionaryRepository struct {
	db *database.DB
}

// NewDictionaryRepository creates a new dictionary repository
func NewDictionaryRepository(db *database.DB) *DictionaryRepository {
	return &DictionaryRepository{db: db}
}

const dictionaryColumns = "id, public_id, name, checksum, word_count, created_at"

// Create stores a dictionary and its words in one transaction. Words keep
// their order through the position column. On success ID and CreatedAt are
// filled in.
func (r *DictionaryRepository) Create(ctx context.Context, dict *models.Dictionary, words []string) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := tx.ExecReturningID(ctx,
		"INSERT INTO dictionaries (public_id, name, checksum, word_count) VALUES (?, ?, ?, ?)",
		dict.PublicID, dict.Name, dict.Checksum, len(words))
	if err != nil {
		return fmt.Errorf("failed to create dictionary: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO dictionary_words (dictionary_id, position, word) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for position, word := range words {
		if _, err := stmt.ExecContext(ctx, id, position, word); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	dict.ID = id
	dict.WordCount = len(words)
	dict.CreatedAt = time.Now()
	return nil
}

// GetByName retrieves a dictionary by name, or nil if there is none
func (r *DictionaryRepository) GetByName(ctx context.Context, name string) (*models.Dictionary, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+dictionaryColumns+" FROM dictionaries WHERE name = ?", name)
	return scanDictionary(row)
}

// GetByChecksum retrieves the first dictionary with the given content
// checksum, or nil if there is none
func (r *DictionaryRepository) GetByChecksum(ctx context.Context, checksum string) (*models.Dictionary, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+dictionaryColumns+" FROM dictionaries WHERE checksum = ? ORDER BY id LIMIT 1", checksum)
	return scanDictionary(row)
}

// List retrieves all dictionaries ordered by name
func (r *DictionaryRepository) List(ctx context.Context) ([]models.Dictionary, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+dictionaryColumns+" FROM dictionaries ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionaries: %w", err)
	}
	defer rows.Close()

	var dicts []models.Dictionary
	for rows.Next() {
		var d models.Dictionary
		if err := rows.Scan(&d.ID, &d.PublicID, &d.Name, &d.Checksum, &d.WordCount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dictionary: %w", err)
		}
		dicts = append(dicts, d)
	}

	return dicts, rows.Err()
}

// Words retrieves a dictionary's words in source order
func (r *DictionaryRepository) Words(ctx context.Context, dictionaryID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT word FROM dictionary_words WHERE dictionary_id = ? ORDER BY position", dictionaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, rows.Err()
}

// Delete removes a dictionary and its words. It reports whether a
// dictionary was removed.
func (r *DictionaryRepository) Delete(ctx context.Context, name string) (bool, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM dictionaries WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get dictionary: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM dictionary_words WHERE dictionary_id = ?", id); err != nil {
		return false, fmt.Errorf("failed to delete words: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM dictionaries WHERE id = ?", id); err != nil {
		return false, fmt.Errorf("failed to delete dictionary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

func scanDictionary(row *sql.Row) (*models.Dictionary, error) {
	d := &models.Dictionary{}
	err := row.Scan(&d.ID, &d.PublicID, &d.Name, &d.Checksum, &d.WordCount, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dictionary: %w", err)
	}
	return d, nil
}
