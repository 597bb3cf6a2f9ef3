// Package main is the entry point for RustyGame.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rustygame/internal/game"
	"github.com/samdwyer/rustygame/internal/telemetry"
)

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

	// tcell owns the terminal while the game runs, so log lines go to a
	// file or nowhere until it is released.
	restoreLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer restoreLog()

	setupOTelEnv()

	// SIGHUP arrives when the terminal window is closed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, log.Default())
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			// ctx may already be cancelled by a signal; flushing needs its own.
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		restoreLog()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		restoreLog()
		log.Fatalf("Game error: %v", err)
	}
}

// redirectLog points the standard logger at path, or discards output when
// path is empty. The returned func restores stderr and closes the file.
func redirectLog(path string) (restore func(), err error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	closed := false
	return func() {
		log.SetOutput(os.Stderr)
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_RUSTYGAME_API_KEY")
	if apiKey == "" {
		// Leave any OTEL_* settings from the environment alone
		return
	}

	dataset := os.Getenv("HONEYCOMB_RUSTYGAME_DATASET")
	if dataset == "" {
		dataset = "rustygame" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
