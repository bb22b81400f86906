// Package config loads the demo embedders' settings: PTY geometry, the
// program to spawn, scrollback capacity, and palette overrides for
// internal/term's 256-color table.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/coreterm/vtcore/internal/term"
)

// Config holds the settings shared by cmd/vtview and cmd/vtview-tcell.
type Config struct {
	Program          string            `json:"program,omitempty"`
	Args             []string          `json:"args,omitempty"`
	DefaultCols      int               `json:"default_cols,omitempty"`
	DefaultRows      int               `json:"default_rows,omitempty"`
	ScrollbackLines  int               `json:"scrollback_lines,omitempty"`
	PaletteOverrides map[string]string `json:"palette,omitempty"` // "0".."255" -> "#rrggbb"
}

// Default returns the built-in configuration used when no file is
// present or a loaded file omits a field.
func Default() *Config {
	return &Config{
		Program:         defaultShell(),
		DefaultCols:     80,
		DefaultRows:     24,
		ScrollbackLines: 10000,
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// Load reads a JSON config file at path, overlaying its fields onto
// Default(). A missing file is not an error: Default() is returned
// unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var overlay Config
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, err
	}
	applyOverlay(cfg, &overlay)
	return cfg, nil
}

// applyOverlay copies every non-zero field of overlay onto cfg.
func applyOverlay(cfg, overlay *Config) {
	if overlay.Program != "" {
		cfg.Program = overlay.Program
	}
	if len(overlay.Args) > 0 {
		cfg.Args = overlay.Args
	}
	if overlay.DefaultCols > 0 {
		cfg.DefaultCols = overlay.DefaultCols
	}
	if overlay.DefaultRows > 0 {
		cfg.DefaultRows = overlay.DefaultRows
	}
	if overlay.ScrollbackLines > 0 {
		cfg.ScrollbackLines = overlay.ScrollbackLines
	}
	if len(overlay.PaletteOverrides) > 0 {
		cfg.PaletteOverrides = overlay.PaletteOverrides
	}
}

// ApplyPalette parses cfg.PaletteOverrides ("0".."255" -> "#rrggbb") and
// sets each entry on pal, so a config file's palette section actually
// reaches the running Terminal's 256-color table. A malformed index or
// hex string aborts with an error naming the offending key.
func ApplyPalette(cfg *Config, pal *term.Palette) error {
	for key, hex := range cfg.PaletteOverrides {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx > 255 {
			return fmt.Errorf("config: palette index %q out of range 0-255", key)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return fmt.Errorf("config: palette[%q] = %q: %w", key, hex, err)
		}
		r, g, b := c.RGB255()
		pal.Set(uint8(idx), r, g, b)
	}
	return nil
}
