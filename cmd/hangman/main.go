// Package main is the entry point for Hangman.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()

		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := telemetry.ShutdownWithTimeout(ctx, shutdown, telemetryShutdownTimeout); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	console, restoreLog, err := newConsole(cfg)
	if err != nil {
		log.Fatalf("Failed to open console: %v", err)
	}

	g, err := game.New(cfg, console)
	if err != nil {
		console.Close()
		restoreLog()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	result, err := g.Run(ctx)
	console.Close()
	restoreLog()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}

	log.Printf("Game finished: status=%s word=%s wrong=%d guesses=%d seed=%d",
		result.Status, result.Word, result.WrongCount, result.Guesses, result.Seed)
}

// newConsole picks the plain console when asked to or when stdout is not
// a terminal. While the terminal console owns the screen, log output goes
// to cfg.LogFile or is discarded; the returned func restores stderr.
func newConsole(cfg game.Config) (ui.Console, func(), error) {
	if cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ui.NewPlain(os.Stdin, os.Stdout), func() {}, nil
	}

	theme, err := ui.NewTheme(cfg.AccentColor)
	if err != nil {
		log.Printf("Warning: %v, using default accent", err)
		theme = ui.DefaultTheme()
	}

	var logFile *os.File
	if cfg.LogFile != "" {
		logFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
	}

	terminal, err := ui.NewTerminal(theme)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, nil, err
	}

	if logFile != nil {
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	restore := func() {
		log.SetOutput(os.Stderr)
		if logFile != nil {
			logFile.Close()
		}
	}
	return terminal, restore, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the
	// headers are built here from the API key.
	apiKey := os.Getenv("HONEYCOMB_HANGMAN_API_KEY")
	dataset := os.Getenv("HONEYCOMB_HANGMAN_DATASET")
	if dataset == "" {
		dataset = "hangman"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
