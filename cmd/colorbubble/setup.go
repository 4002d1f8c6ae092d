package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/level"
	"github.com/vovakirdan/colorbubble/internal/registry"
	"github.com/vovakirdan/colorbubble/internal/storage"
)

// campaignSource is the resolved level set and the ID runs are recorded under.
type campaignSource struct {
	packID string
	title  string
	levels *level.Set
}

// loadLevels resolves --levels or --pack.
func loadLevels() (campaignSource, error) {
	if flagLevelsDir != "" {
		set, err := level.LoadAll(os.DirFS(flagLevelsDir), ".")
		if err != nil {
			return campaignSource{}, err
		}
		abs, absErr := filepath.Abs(flagLevelsDir)
		if absErr != nil {
			abs = flagLevelsDir
		}
		return campaignSource{packID: "dir:" + abs, title: filepath.Base(abs), levels: set}, nil
	}

	if !registry.Exists(flagPack) {
		return campaignSource{}, fmt.Errorf("unknown pack %q (run 'colorbubble levels --help')", flagPack)
	}
	set, err := registry.Load(flagPack)
	if err != nil {
		return campaignSource{}, err
	}
	title := flagPack
	for _, p := range registry.List() {
		if p.ID == flagPack {
			title = p.Title
		}
	}
	return campaignSource{packID: flagPack, title: title, levels: set}, nil
}

// loadTuning resolves --config through the config search path.
func loadTuning(logger *log.Logger) (config.Tuning, error) {
	tuning, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Tuning{}, err
	}
	logger.Debug("tuning loaded", "source", source)
	return tuning, nil
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so without --log-file they log nowhere unless fallback is set.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorbubble",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// openStore opens the records database. Failures are logged and play
// continues without records.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		logger.Warn("could not open records database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig(startLevel int) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		FrameRate:  flagFPS,
		StartLevel: startLevel,
	}
}

// session bundles what every interactive command sets up.
type session struct {
	source campaignSource
	tuning config.Tuning
	logger *log.Logger
	store  *storage.Store
	close  func()
}

func newSession(logFallback io.Writer, withStore bool) (*session, error) {
	logger, closeLog, err := newLogger(logFallback)
	if err != nil {
		return nil, err
	}

	tuning, err := loadTuning(logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	source, err := loadLevels()
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Info("levels loaded", "pack", source.packID, "count", source.levels.Len())

	s := &session{source: source, tuning: tuning, logger: logger}
	if withStore {
		s.store = openStore(logger)
	}
	s.close = func() {
		if s.store != nil {
			s.store.Close()
		}
		closeLog()
	}
	return s, nil
}
