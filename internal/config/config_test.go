package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/murkoff/internal/grid"
	"github.com/javiermolinar/murkoff/internal/puzzle"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Geometry() != grid.DefaultGeometry() {
		t.Errorf("expected default geometry, got %+v", cfg.Geometry())
	}
	if cfg.Desktop.MarqueeThreshold != 5 {
		t.Errorf("expected marquee threshold 5, got %d", cfg.Desktop.MarqueeThreshold)
	}
	if cfg.Session.Password != "1234" {
		t.Errorf("expected password 1234, got %s", cfg.Session.Password)
	}
	if cfg.UI.Theme != "murkoff" {
		t.Errorf("expected theme murkoff, got %s", cfg.UI.Theme)
	}
	if !cfg.Audio.Enabled {
		t.Errorf("expected audio enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[desktop]
cols = 10
rows = 6

[session]
password = "murkoff"
skip_boot = true

[puzzle]
cipher_rounds = 1
lives = 5

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Desktop.Cols != 10 || cfg.Desktop.Rows != 6 {
		t.Errorf("expected 10x6 grid, got %dx%d", cfg.Desktop.Cols, cfg.Desktop.Rows)
	}
	if cfg.Desktop.CellWidth != 12 {
		t.Errorf("expected unset keys to keep defaults, got cell_width %d", cfg.Desktop.CellWidth)
	}
	if cfg.Session.Password != "murkoff" || !cfg.Session.SkipBoot {
		t.Errorf("unexpected session %+v", cfg.Session)
	}
	if cfg.Rounds()[puzzle.KindCipher] != 1 || cfg.Puzzle.Lives != 5 {
		t.Errorf("unexpected puzzle %+v", cfg.Puzzle)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[desktop\ncols = "), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("MURKOFF_THEME", "mocha")
	t.Setenv("MURKOFF_PASSWORD", "0000")
	t.Setenv("MURKOFF_SKIP_BOOT", "true")
	t.Setenv("MURKOFF_AUDIO", "0")
	t.Setenv("MURKOFF_GRID_COLS", "9")
	t.Setenv("MURKOFF_GRID_ROWS", "not-a-number")
	t.Setenv("MURKOFF_TICK_MS", "20")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme from env, got %s", cfg.UI.Theme)
	}
	if cfg.Session.Password != "0000" || !cfg.Session.SkipBoot {
		t.Errorf("expected session from env, got %+v", cfg.Session)
	}
	if cfg.Audio.Enabled {
		t.Errorf("expected audio disabled from env")
	}
	if cfg.Desktop.Cols != 9 {
		t.Errorf("expected cols 9, got %d", cfg.Desktop.Cols)
	}
	if cfg.Desktop.Rows != 8 {
		t.Errorf("expected invalid rows override to be ignored, got %d", cfg.Desktop.Rows)
	}
	if cfg.Tick() != 20*time.Millisecond {
		t.Errorf("expected 20ms tick, got %v", cfg.Tick())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero cols", func(c *Config) { c.Desktop.Cols = 0 }, "invalid grid geometry"},
		{"icon wider than cell", func(c *Config) { c.Desktop.IconWidth = 20 }, "invalid grid geometry"},
		{"negative padding", func(c *Config) { c.Desktop.Padding = -1 }, "invalid grid geometry"},
		{"negative marquee threshold", func(c *Config) { c.Desktop.MarqueeThreshold = -1 }, "thresholds"},
		{"zero double click", func(c *Config) { c.Desktop.DoubleClickMS = 0 }, "double_click_ms"},
		{"empty password", func(c *Config) { c.Session.Password = "" }, "password"},
		{"zero boot", func(c *Config) { c.Session.BootMS = 0 }, "boot_ms"},
		{"zero rounds", func(c *Config) { c.Puzzle.TranslationRounds = 0 }, "rounds"},
		{"zero lives", func(c *Config) { c.Puzzle.Lives = 0 }, "lives"},
		{"zero reveal", func(c *Config) { c.Puzzle.RevealSeconds = 0 }, "reveal_seconds"},
		{"zero tick", func(c *Config) { c.UI.TickMS = 0 }, "tick_ms"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "frappe" }, "unknown theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_GeometryErrorIsWrapped(t *testing.T) {
	cfg := Default()
	cfg.Desktop.Rows = -1
	if err := cfg.Validate(); !errors.Is(err, grid.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestPuzzleOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.PuzzleOptions()
	if opts.Lives != 3 || opts.StudyDuration != 10*time.Second || opts.RevealInterval != 5*time.Second {
		t.Fatalf("unexpected options %+v", opts)
	}
	want := map[puzzle.Kind]int{
		puzzle.KindSequence:    4,
		puzzle.KindTranslation: 3,
		puzzle.KindCipher:      3,
	}
	if diff := cmp.Diff(want, cfg.Rounds()); diff != "" {
		t.Fatalf("rounds mismatch (-want +got):\n%s", diff)
	}
	if cfg.DoubleClick() != 400*time.Millisecond {
		t.Fatalf("expected 400ms double click, got %v", cfg.DoubleClick())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot get home dir")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "latte"
	cfg.Desktop.Cols = 12
	cfg.Session.SkipBoot = true

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
