// Command vtview is a Bubble Tea demo embedder for internal/term: it
// spawns a shell under internal/ptyproc and renders the terminal core's
// Snapshot through charm.land/bubbletea.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/coreterm/vtcore/internal/config"
	"github.com/coreterm/vtcore/internal/logging"
)

func main() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	logger, err := logging.NewFile(filepath.Join(home, ".vtcore", "logs"), logging.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtview: could not initialize logging: %v\n", err)
	} else {
		defer logger.Close()
	}

	cfgPath := filepath.Join(home, ".config", "vtcore", "config.json")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtview: config load failed, using defaults: %v\n", err)
		cfg = config.Default()
	}

	m, err := newModel(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vtview: %v\n", err)
		os.Exit(1)
	}

	watcher, err := config.NewWatcher(cfgPath, m.applyConfig)
	if err != nil {
		if logger != nil {
			logger.Debugf("vtview: config watch disabled: %v", err)
		}
	} else {
		defer watcher.Close()
	}

	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		m.process.Close()
		fmt.Fprintf(os.Stderr, "vtview: %v\n", err)
		os.Exit(1)
	}
	m.process.Close()
}
