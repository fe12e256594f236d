// Package game provides the main game loop.
package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/hangman"
	"github.com/samdwyer/hangman/internal/random"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/words"
)

// Result describes how a run ended.
type Result struct {
	Status     hangman.Status // StatusPlaying if the player quit early
	Word       string
	WrongCount int
	Guesses    int
	Seed       int64 // Zero when the word was pinned by config
}

// Game drives one round of hangman on a console.
type Game struct {
	console ui.Console
	bank    *words.Bank
	state   *hangman.State
	tracer  trace.Tracer
	seed    int64
}

// New picks the secret word and creates a game instance.
func New(cfg Config, console ui.Console) (*Game, error) {
	bank, err := words.LoadBank()
	if err != nil {
		return nil, fmt.Errorf("load word bank: %w", err)
	}

	var (
		def  *words.WordDef
		seed int64
	)
	if cfg.Word != "" {
		def = bank.Lookup(cfg.Word)
		if def == nil {
			return nil, fmt.Errorf("word %q is not in the word bank", cfg.Word)
		}
	} else {
		rng, used, err := random.NewRand(cfg.Seed)
		if err != nil {
			return nil, err
		}
		def, seed = bank.Pick(rng), used
	}

	state, err := hangman.New(def.Word, def.Description)
	if err != nil {
		return nil, err
	}

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		console: console,
		bank:    bank,
		state:   state,
		tracer:  tracer,
		seed:    seed,
	}, nil
}

// State returns the underlying game state.
func (g *Game) State() *hangman.State {
	return g.state
}

// Run executes the main game loop until the word is solved, the guesses
// run out, or the player quits.
func (g *Game) Run(ctx context.Context) (Result, error) {
	ctx, span := g.tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.Int("bank.size", g.bank.Count()),
		attribute.Int("word.length", len(g.state.Word())),
		attribute.Int64("seed", g.seed),
	)
	span.End()

	intro := introLines()
	var feedback []string

	// Main game loop
	for {
		view := g.view(intro, feedback)
		intro, feedback = nil, nil

		if status := g.state.Status(); status.Terminal() {
			view.Result = resultLines(g.state)
			if err := g.console.Finish(ctx, view); err != nil && !errors.Is(err, context.Canceled) {
				return g.end(ctx), err
			}
			return g.end(ctx), nil
		}

		if g.state.WrongCount() == 2 {
			view.Notes = append(view.Notes, g.state.PartialReveal())
		}
		g.console.Render(view)

		letter, err := g.readGuess(ctx)
		if errors.Is(err, ui.ErrQuit) {
			return g.end(ctx), nil
		}
		if err != nil {
			return g.end(ctx), err
		}

		if g.state.HasGuessed(letter) {
			feedback = []string{duplicateMessage(letter)}
			continue
		}

		correct := g.guess(ctx, letter)
		feedback = []string{feedbackMessage(letter, correct)}
	}
}

// readGuess prompts until the player enters a single letter.
func (g *Game) readGuess(ctx context.Context) (rune, error) {
	for {
		line, err := g.console.ReadLine(ctx, guessPrompt)
		if err != nil {
			return 0, err
		}

		letter, err := ParseGuess(line)
		if err != nil {
			g.console.Notify(invalidInput)
			continue
		}
		return letter, nil
	}
}

// guess applies letter to the state (traced).
func (g *Game) guess(ctx context.Context, letter rune) bool {
	_, span := g.tracer.Start(ctx, "game.guess")
	defer span.End()

	correct := g.state.ApplyGuess(letter)
	span.SetAttributes(
		attribute.String("guess.letter", string(letter)),
		attribute.Bool("guess.correct", correct),
		attribute.Int("game.wrong_count", g.state.WrongCount()),
		attribute.String("game.status", g.state.Status().String()),
	)
	return correct
}

// end records the outcome and builds the run result.
func (g *Game) end(ctx context.Context) Result {
	result := Result{
		Status:     g.state.Status(),
		Word:       g.state.Word(),
		WrongCount: g.state.WrongCount(),
		Guesses:    len(g.state.Guessed()),
		Seed:       g.seed,
	}

	_, span := g.tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("game.status", result.Status.String()),
		attribute.Int("game.wrong_count", result.WrongCount),
		attribute.Int("game.guesses", result.Guesses),
	)
	span.End()

	return result
}

// view snapshots the state for the console.
func (g *Game) view(intro, feedback []string) ui.View {
	v := ui.View{
		Intro:    intro,
		Word:     g.state.Revealed(),
		Guessed:  g.state.Guessed(),
		Wrong:    g.state.WrongCount(),
		MaxWrong: g.state.MaxWrong(),
		Feedback: feedback,
	}
	if hint, ok := g.state.Hint(hangman.HintThreshold); ok {
		v.Hint = hint
	}
	return v
}
