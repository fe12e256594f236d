// Package hangman provides the word-guessing state machine.
package hangman

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// MaxWrong is the number of wrong guesses that loses the game.
	MaxWrong = 6
	// HintThreshold is the wrong-guess count at which the description is shown.
	HintThreshold = 3
	// Placeholder stands in for a letter that has not been guessed yet.
	Placeholder = '_'
)

// ErrEmptyWord is returned when a game is created without a secret word.
var ErrEmptyWord = errors.New("secret word is empty")

// State holds one round of hangman: the secret word, what has been
// revealed so far, the guess history and the wrong-guess counter.
type State struct {
	word        []rune
	description string
	revealed    []rune
	guessed     []rune
	wrongCount  int
}

// New creates a game for the given word. The word is upper-cased and must
// consist of letters only.
func New(word, description string) (*State, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return nil, ErrEmptyWord
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("secret word %q contains non-letter %q", word, r)
		}
	}

	letters := []rune(word)
	revealed := make([]rune, len(letters))
	for i := range revealed {
		revealed[i] = Placeholder
	}

	return &State{
		word:        letters,
		description: description,
		revealed:    revealed,
		guessed:     make([]rune, 0, 26),
	}, nil
}

// ApplyGuess records the letter and reveals every position holding it.
// It returns true if at least one position matched; otherwise the wrong
// count is incremented. Callers reject repeated letters beforehand.
func (s *State) ApplyGuess(letter rune) bool {
	letter = unicode.ToUpper(letter)
	s.guessed = append(s.guessed, letter)

	correct := false
	for i, r := range s.word {
		if r == letter {
			s.revealed[i] = letter
			correct = true
		}
	}

	if !correct {
		s.wrongCount++
	}
	return correct
}

// IsWon reports whether no placeholder remains.
func (s *State) IsWon() bool {
	for _, r := range s.revealed {
		if r == Placeholder {
			return false
		}
	}
	return true
}

// IsLost reports whether the wrong-guess limit has been reached.
func (s *State) IsLost() bool {
	return s.wrongCount >= MaxWrong
}

// Status returns the lifecycle state. A win takes priority over a loss.
func (s *State) Status() Status {
	switch {
	case s.IsWon():
		return StatusWon
	case s.IsLost():
		return StatusLost
	default:
		return StatusPlaying
	}
}

// Hint returns the word's description once the wrong count has reached
// threshold.
func (s *State) Hint(threshold int) (string, bool) {
	if s.wrongCount < threshold {
		return "", false
	}
	return s.description, true
}

// PartialReveal names the first and last letters of the word.
func (s *State) PartialReveal() string {
	if len(s.word) > 2 {
		return fmt.Sprintf("Starts with '%c', ends with '%c'", s.word[0], s.word[len(s.word)-1])
	}
	return "Word is too short for hints"
}

// HasGuessed reports whether letter was already submitted.
func (s *State) HasGuessed(letter rune) bool {
	letter = unicode.ToUpper(letter)
	for _, r := range s.guessed {
		if r == letter {
			return true
		}
	}
	return false
}

// Word returns the secret word.
func (s *State) Word() string {
	return string(s.word)
}

// Description returns the dictionary description of the secret word.
func (s *State) Description() string {
	return s.description
}

// Revealed returns a copy of the masked word.
func (s *State) Revealed() []rune {
	out := make([]rune, len(s.revealed))
	copy(out, s.revealed)
	return out
}

// Guessed returns a copy of the guessed letters in submission order.
func (s *State) Guessed() []rune {
	out := make([]rune, len(s.guessed))
	copy(out, s.guessed)
	return out
}

// WrongCount returns the number of wrong guesses so far.
func (s *State) WrongCount() int {
	return s.wrongCount
}

// MaxWrong returns the wrong-guess limit.
func (s *State) MaxWrong() int {
	return MaxWrong
}

// Remaining returns how many wrong guesses are left before losing.
func (s *State) Remaining() int {
	if s.wrongCount >= MaxWrong {
		return 0
	}
	return MaxWrong - s.wrongCount
}
