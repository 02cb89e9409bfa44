package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/config"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/platform/tui"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/storage"
)

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.WaterSortConfig, error) {
	cfg, err := config.LoadWaterSort(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// sessionOptions turns the game config into session options without a
// persister.
func sessionOptions(cfg config.WaterSortConfig, logger *log.Logger) (watersort.Options, error) {
	params, err := cfg.Params()
	if err != nil {
		return watersort.Options{}, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return watersort.Options{
		Params:       params,
		Stars:        cfg.StarRules(),
		Rules:        cfg.Rules(),
		Shuffler:     puzzle.NewShuffler(seed),
		Logger:       logger,
		TickInterval: cfg.TickInterval(),
	}, nil
}

// openLogger returns a logger writing to --log-file, or one that discards
// everything so the TUI screen stays clean.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "watersort",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// gameEnv bundles everything a command needs to run a session.
type gameEnv struct {
	store   *storage.Store
	profile *storage.ProfileStore
	session *watersort.Session
	logger  *log.Logger
	closer  io.Closer
}

// openSession loads config, opens storage and starts an idle session for
// --profile. requireStore fails when the database cannot be opened;
// otherwise play continues in memory.
func openSession(requireStore bool) (*gameEnv, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return nil, err
	}

	opts, err := sessionOptions(cfg, logger)
	if err != nil {
		closer.Close()
		return nil, err
	}

	env := &gameEnv{logger: logger, closer: closer}

	store, err := storage.Open(flagDBPath)
	switch {
	case err != nil && requireStore:
		closer.Close()
		return nil, err
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - game still works
	default:
		env.store = store
		env.profile = store.ForProfile(flagProfile)
		opts.Persister = env.profile
	}
	opts.DisplayName = flagProfile

	sess, err := watersort.NewSession(opts)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.session = sess
	return env, nil
}

// attempts returns the profile's attempt log, or nil without storage.
func (e *gameEnv) attempts() tui.AttemptLog {
	if e.profile == nil {
		return nil
	}
	return e.profile
}

// Close stops the session and releases storage and the log file.
func (e *gameEnv) Close() {
	if e.session != nil {
		e.session.Close()
	}
	if e.store != nil {
		e.store.Close()
	}
	//nolint:errcheck // Best-effort close
	e.closer.Close()
}
