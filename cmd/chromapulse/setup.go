package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/chromapulse/internal/config"
	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/storage"
)

// loadGameConfig loads tuning from --config and applies preset, falling
// back to --difficulty when preset is empty.
func loadGameConfig(preset config.DifficultyPreset) (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if preset == "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openBackend opens the scores database, degrading to memory on failure.
func openBackend(path string) storage.Backend {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Scores from this session will not be saved.")
		return storage.NewMemory()
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
