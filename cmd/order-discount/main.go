package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/volume-discounts/internal/config"
	"github.com/noah-isme/volume-discounts/internal/engine"
	"github.com/noah-isme/volume-discounts/internal/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := obs.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel).With().
		Str("function", string(engine.VariantOrder)).
		Str("env", cfg.AppEnv).
		Logger()

	if err := run(os.Stdin, os.Stdout, logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("run function")
	}
}

// run reads one invocation payload, evaluates it, and writes the result.
// Malformed payloads still produce a valid empty result; only boundary I/O
// failures are errors.
func run(in io.Reader, out io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	payload, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read invocation payload: %w", err)
	}

	ctx := context.Background()
	if cfg.TraceEnabled {
		ctx = obs.WithTrace(ctx, logger.With().Str("invocation_id", uuid.NewString()).Logger())
	}

	result := engine.Run(ctx, engine.VariantOrder, payload, engine.Options{
		DefaultMessage: cfg.DefaultMessage,
	})
	if err := json.NewEncoder(out).Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
