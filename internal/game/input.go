package game

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidGuess is returned for input that is not exactly one letter A-Z.
var ErrInvalidGuess = errors.New("guess must be exactly one letter")

// ParseGuess trims and upper-cases line and returns its single letter.
// Only the letters A to Z are accepted.
func ParseGuess(line string) (rune, error) {
	s := cases.Upper(language.Und).String(strings.TrimSpace(line))
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidGuess
	}

	r, _ := utf8.DecodeRuneInString(s)
	if r < 'A' || r > 'Z' {
		return 0, ErrInvalidGuess
	}
	return r, nil
}
