package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/retrowave-arcade/internal/audio"
	"github.com/vovakirdan/retrowave-arcade/internal/core"
	"github.com/vovakirdan/retrowave-arcade/internal/highscore"
	"github.com/vovakirdan/retrowave-arcade/internal/kv"
	"github.com/vovakirdan/retrowave-arcade/internal/logging"
	"github.com/vovakirdan/retrowave-arcade/internal/platform/tui"
	"github.com/vovakirdan/retrowave-arcade/internal/storage"
	"github.com/vovakirdan/retrowave-arcade/internal/theme"
)

// appName names the per-user data directory.
const appName = "retrowave-arcade"

// localServices opens everything a local terminal session needs. Each
// failure degrades to an in-memory or silent replacement. The returned
// function releases what was opened.
func localServices() (tui.Services, func()) {
	logger, logFile, err := logging.OpenFile(logging.DefaultFile, "arcade", logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	var profile kv.Store
	if gd, gerr := kv.OpenGData(appName); gerr != nil {
		logger.Warn("user data unavailable, settings will not persist", "err", gerr)
		profile = kv.NewMemory()
	} else {
		profile = gd
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score history", "err", err)
		store = nil
	}

	themes := theme.NewSwitcher(profile, theme.DetectDark())
	if flagTheme != "" {
		if terr := themes.Set(flagTheme); terr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", terr)
		}
	}

	player, err := audio.Open(audio.Config{Enabled: flagSound, Store: profile})
	if err != nil {
		logger.Warn("audio unavailable", "err", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if name := os.Getenv("USER"); name != "" {
		cfg.Player = name
	}

	svc := tui.Services{
		Board:   highscore.NewBoard(profile),
		Themes:  themes,
		Audio:   player,
		Logger:  logger,
		Runtime: cfg,
	}
	if store != nil {
		svc.History = store
	}

	cleanup := func() {
		player.Close()
		if store != nil {
			store.Close()
		}
		closeQuietly(logFile)
	}
	return svc, cleanup
}

func closeQuietly(c io.Closer) {
	if c != nil {
		//nolint:errcheck // Nothing left to report to
		c.Close()
	}
}
