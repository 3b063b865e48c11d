package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMergesOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gosnes.json")
	if err := os.WriteFile(path, []byte(`{"rom_path":"game.sfc","debug":{"trace":true}}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ROMPath != "game.sfc" {
		t.Fatalf("ROMPath = %q, want game.sfc", cfg.ROMPath)
	}
	if !cfg.Debug.Trace {
		t.Fatalf("Debug.Trace = false, want true")
	}
	if cfg.Emulation.Mapping != "lorom" {
		t.Fatalf("Emulation.Mapping = %q, want default lorom to survive partial file", cfg.Emulation.Mapping)
	}
	if cfg.Debug.RingSize != 64 {
		t.Fatalf("Debug.RingSize = %d, want default 64 to survive partial file", cfg.Debug.RingSize)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/nonexistent/gosnes.json"); err == nil {
		t.Fatalf("expected error loading missing file")
	}
}
