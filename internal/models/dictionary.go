package models

import "time"

// Dictionary is a stored word list. Its words live in dictionary_words in
// source order.
type Dictionary struct {
	ID        int64
	PublicID  string
	Name      string
	Checksum  string // blake2b-256 of the normalized word list, hex
	WordCount int
	CreatedAt time.Time
}
