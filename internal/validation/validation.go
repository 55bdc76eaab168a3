package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

var dictionaryNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateWord checks a word already on the board
func ValidateWord(word string, maxLength int) error {
	if word == "" {
		return ValidationError{Field: "word", Message: "word is required"}
	}
	return validateLetters("word", word, maxLength)
}

// ValidateTray checks a tray of tiles. An empty tray is allowed. The limit
// matters: the number of tile combinations doubles with every tile.
func ValidateTray(tray string, maxLength int) error {
	return validateLetters("tray", tray, maxLength)
}

// ValidateDictionaryName checks a dictionary name
func ValidateDictionaryName(name string) error {
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if !dictionaryNameRegex.MatchString(name) {
		return ValidationError{Field: "name", Message: "name must be lowercase letters, digits, '-' or '_' (max 64)"}
	}
	return nil
}

func validateLetters(field, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); maxLength > 0 && n > maxLength {
		return ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %d letters", field, maxLength)}
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return ValidationError{Field: field, Message: fmt.Sprintf("%s must contain only letters", field)}
		}
	}
	return nil
}
