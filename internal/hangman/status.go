package hangman

// Status represents where a game is in its lifecycle.
type Status int

const (
	// StatusPlaying means the word is not yet solved and guesses remain.
	StatusPlaying Status = iota
	// StatusWon means every letter of the word has been revealed.
	StatusWon
	// StatusLost means the wrong-guess limit was reached.
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses can change the outcome.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
