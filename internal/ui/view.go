package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrQuit is returned by ReadLine when the player leaves the game.
var ErrQuit = errors.New("player quit")

// Title is the heading drawn above the board.
const Title = "HANGMAN GAME - GUESS THE PROGRAMMING LANGUAGE"

// ruleWidth is the width of the "=" rules framing the title and results.
const ruleWidth = 40

// Console is a front-end the game loop draws to and reads guesses from.
type Console interface {
	// Render replaces what is shown with v.
	Render(v View)
	// Notify shows a one-line message without redrawing the board.
	Notify(msg string)
	// ReadLine shows prompt and blocks until the player submits a line.
	ReadLine(ctx context.Context, prompt string) (string, error)
	// Finish shows the final view and lets the player read it.
	Finish(ctx context.Context, v View) error
	// Close releases the console.
	Close() error
}

// View is a snapshot of everything drawn for one turn.
type View struct {
	Intro    []string // Welcome and instructions, first turn only
	Word     []rune   // Masked word
	Guessed  []rune   // Guessed letters in order
	Wrong    int
	MaxWrong int
	Hint     string   // Empty until the hint threshold
	Feedback []string // Outcome of the last guess, shown above the board
	Notes    []string // Extra hints shown below the board
	Result   []string // Win or loss summary, final view only
}

// LineKind classifies a rendered line so consoles can style it.
type LineKind int

const (
	LineText LineKind = iota
	LineTitle
	LineWord
	LineArt
	LineHint
	LineNote
	LineResult
)

// Line is one row of rendered output.
type Line struct {
	Text string
	Kind LineKind
}

// Rule returns a horizontal rule of "=" characters.
func Rule() string {
	return strings.Repeat("=", ruleWidth)
}

// Lines lays v out as rows of text, top to bottom.
func Lines(v View) []Line {
	var lines []Line
	for _, s := range v.Intro {
		lines = append(lines, Line{Text: s})
	}
	for _, s := range v.Feedback {
		lines = append(lines, Line{Text: s, Kind: LineNote})
	}

	lines = append(lines,
		Line{},
		Line{Text: Rule(), Kind: LineTitle},
		Line{Text: Title, Kind: LineTitle},
		Line{Text: Rule(), Kind: LineTitle},
		Line{Text: "Word: " + spaced(v.Word), Kind: LineWord},
	)
	if len(v.Guessed) > 0 {
		lines = append(lines, Line{Text: "Guessed letters: " + spaced(v.Guessed)})
	}
	lines = append(lines, Line{Text: fmt.Sprintf("Wrong guesses: %d/%d", v.Wrong, v.MaxWrong)})
	for _, s := range Stage(v.Wrong) {
		lines = append(lines, Line{Text: s, Kind: LineArt})
	}
	if v.Hint != "" {
		lines = append(lines, Line{Text: "Hint: " + v.Hint, Kind: LineHint})
	}
	for _, s := range v.Notes {
		lines = append(lines, Line{Text: s, Kind: LineNote})
	}
	if len(v.Result) > 0 {
		lines = append(lines, Line{}, Line{Text: Rule(), Kind: LineResult})
		for _, s := range v.Result {
			lines = append(lines, Line{Text: s, Kind: LineResult})
		}
		lines = append(lines, Line{Text: Rule(), Kind: LineResult})
	}
	return lines
}

// spaced joins runes with single spaces, e.g. "S _ _ F _".
func spaced(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
