package game

import (
	"fmt"

	"github.com/samdwyer/hangman/internal/hangman"
	"github.com/samdwyer/hangman/internal/ui"
)

const (
	welcomeMessage = "Welcome to Programming Language Hangman!"
	guessPrompt    = "Enter a single letter (A-Z):"
	invalidInput   = "Please enter exactly one letter!"
)

// introLines returns the welcome text and rules.
func introLines() []string {
	return []string{
		welcomeMessage,
		"",
		"HOW TO PLAY:",
		"- Guess the programming language one letter at a time",
		fmt.Sprintf("- You can make up to %d wrong guesses", hangman.MaxWrong),
		fmt.Sprintf("- After %d wrong guesses, you'll get a hint", hangman.HintThreshold),
		"- Win by guessing all letters before running out of guesses",
		ui.Rule(),
	}
}

func duplicateMessage(letter rune) string {
	return fmt.Sprintf("You already guessed '%c'! Try a different letter.", letter)
}

func feedbackMessage(letter rune, correct bool) string {
	if correct {
		return fmt.Sprintf("Good guess! '%c' is in the word.", letter)
	}
	return fmt.Sprintf("Sorry, '%c' is not in the word.", letter)
}

// resultLines summarizes a finished game.
func resultLines(s *hangman.State) []string {
	if s.Status() == hangman.StatusWon {
		return []string{
			"YOU WIN!",
			"You guessed: " + s.Word(),
			fmt.Sprintf("With %d wrong guesses remaining!", s.Remaining()),
		}
	}

	lines := []string{
		"GAME OVER!",
		"The word was: " + s.Word(),
	}
	if desc := s.Description(); desc != "" {
		lines = append(lines, fmt.Sprintf("About %s: %s", s.Word(), desc))
	}
	return lines
}
