// Package config loads a JSON-backed configuration for gosnes,
// mirroring the teacher's grouped-struct/JSON pattern (SPEC_FULL.md
// sec 2) but trimmed to what a headless CPU+bus core consumes: ROM
// path, mapping mode, and trace/debug toggles. GUI-only settings
// (window size, audio buffer, key bindings) belong to the excluded
// rendering surface and are not modeled here. Neither cmd/gosnes nor
// cmd/gosnesgui reads this package; both take their settings from
// command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Emulation groups the knobs that affect core behavior.
type Emulation struct {
	// Mapping selects "lorom" or "hirom"; see cartridge.Mapping.
	Mapping string `json:"mapping"`
	// MaxSteps bounds a headless run; 0 means unbounded.
	MaxSteps int `json:"max_steps"`
}

// Debug groups trace/diagnostic toggles.
type Debug struct {
	Trace     bool `json:"trace"`
	RingSize  int  `json:"ring_size"`
	MMIOTrace bool `json:"mmio_trace"`
}

// Config is the top-level document loaded from a JSON file.
type Config struct {
	ROMPath   string    `json:"rom_path"`
	Emulation Emulation `json:"emulation"`
	Debug     Debug     `json:"debug"`
}

// Default returns the built-in configuration that Load starts from
// before applying a file's fields.
func Default() Config {
	return Config{
		Emulation: Emulation{Mapping: "lorom"},
		Debug:     Debug{RingSize: 64},
	}
}

// Load reads and parses a JSON config file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
