// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/murkoff/internal/grid"
	"github.com/javiermolinar/murkoff/internal/puzzle"
	"github.com/javiermolinar/murkoff/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Desktop DesktopConfig `toml:"desktop"`
	Session SessionConfig `toml:"session"`
	Puzzle  PuzzleConfig  `toml:"puzzle"`
	UI      UIConfig      `toml:"ui"`
	Audio   AudioConfig   `toml:"audio"`
}

// DesktopConfig holds the icon grid geometry and pointer thresholds.
type DesktopConfig struct {
	Cols             int `toml:"cols"`
	Rows             int `toml:"rows"`
	CellWidth        int `toml:"cell_width"`  // terminal columns per grid cell
	CellHeight       int `toml:"cell_height"` // terminal lines per grid cell
	Padding          int `toml:"padding"`
	IconWidth        int `toml:"icon_width"`
	IconHeight       int `toml:"icon_height"`
	DragThreshold    int `toml:"drag_threshold"`
	MarqueeThreshold int `toml:"marquee_threshold"`
	DoubleClickMS    int `toml:"double_click_ms"`
}

// SessionConfig holds the boot and login settings.
type SessionConfig struct {
	Password   string `toml:"password"`
	BootMS     int    `toml:"boot_ms"`
	StartupMS  int    `toml:"startup_ms"`
	BootLineMS int    `toml:"boot_line_ms"`
	SkipBoot   bool   `toml:"skip_boot"`
}

// PuzzleConfig holds the mini-game difficulty.
type PuzzleConfig struct {
	SequenceRounds    int `toml:"sequence_rounds"`
	TranslationRounds int `toml:"translation_rounds"`
	CipherRounds      int `toml:"cipher_rounds"`
	Lives             int `toml:"lives"`
	StudySeconds      int `toml:"study_seconds"`
	RevealSeconds     int `toml:"reveal_seconds"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme  string `toml:"theme"`   // "murkoff", "mocha", "latte"
	TickMS int    `toml:"tick_ms"` // clock resolution of the event loop
}

// AudioConfig toggles the terminal bell cues.
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Desktop: DesktopConfig{
			Cols:             15,
			Rows:             8,
			CellWidth:        12,
			CellHeight:       4,
			Padding:          1,
			IconWidth:        10,
			IconHeight:       3,
			DragThreshold:    1,
			MarqueeThreshold: 5,
			DoubleClickMS:    400,
		},
		Session: SessionConfig{
			Password:   "1234",
			BootMS:     4000,
			StartupMS:  3000,
			BootLineMS: 100,
		},
		Puzzle: PuzzleConfig{
			SequenceRounds:    4,
			TranslationRounds: 3,
			CipherRounds:      3,
			Lives:             3,
			StudySeconds:      10,
			RevealSeconds:     5,
		},
		UI: UIConfig{
			Theme:  theme.DefaultName,
			TickMS: 50,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "murkoff", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config. Values that do not
// parse are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MURKOFF_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("MURKOFF_PASSWORD"); v != "" {
		cfg.Session.Password = v
	}
	if v, ok := envBool("MURKOFF_SKIP_BOOT"); ok {
		cfg.Session.SkipBoot = v
	}
	if v, ok := envBool("MURKOFF_AUDIO"); ok {
		cfg.Audio.Enabled = v
	}
	if v, ok := envInt("MURKOFF_GRID_COLS"); ok {
		cfg.Desktop.Cols = v
	}
	if v, ok := envInt("MURKOFF_GRID_ROWS"); ok {
		cfg.Desktop.Rows = v
	}
	if v, ok := envInt("MURKOFF_TICK_MS"); ok {
		cfg.UI.TickMS = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	d := c.Desktop
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("desktop %dx%d cells of %dx%d, icon %dx%d: %w",
			d.Cols, d.Rows, d.CellWidth, d.CellHeight, d.IconWidth, d.IconHeight, err)
	}
	if d.DragThreshold < 0 || d.MarqueeThreshold < 0 {
		return errors.New("drag and marquee thresholds must not be negative")
	}
	if d.DoubleClickMS <= 0 {
		return errors.New("double_click_ms must be positive")
	}

	s := c.Session
	if s.Password == "" {
		return errors.New("password must be set")
	}
	if s.BootMS <= 0 || s.StartupMS <= 0 || s.BootLineMS <= 0 {
		return errors.New("boot_ms, startup_ms and boot_line_ms must be positive")
	}

	p := c.Puzzle
	if p.SequenceRounds <= 0 || p.TranslationRounds <= 0 || p.CipherRounds <= 0 {
		return errors.New("puzzle rounds must be positive")
	}
	if p.Lives <= 0 {
		return errors.New("lives must be positive")
	}
	if p.StudySeconds <= 0 || p.RevealSeconds <= 0 {
		return errors.New("study_seconds and reveal_seconds must be positive")
	}

	if c.UI.TickMS <= 0 {
		return errors.New("tick_ms must be positive")
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// Geometry returns the grid geometry described by the desktop section.
func (c *Config) Geometry() grid.Geometry {
	d := c.Desktop
	return grid.Geometry{
		Cols:    d.Cols,
		Rows:    d.Rows,
		CellW:   d.CellWidth,
		CellH:   d.CellHeight,
		Padding: d.Padding,
		IconW:   d.IconWidth,
		IconH:   d.IconHeight,
	}
}

// DoubleClick returns the double click window.
func (c *Config) DoubleClick() time.Duration {
	return time.Duration(c.Desktop.DoubleClickMS) * time.Millisecond
}

// Rounds returns the rounds to win per puzzle kind.
func (c *Config) Rounds() map[puzzle.Kind]int {
	return map[puzzle.Kind]int{
		puzzle.KindSequence:    c.Puzzle.SequenceRounds,
		puzzle.KindTranslation: c.Puzzle.TranslationRounds,
		puzzle.KindCipher:      c.Puzzle.CipherRounds,
	}
}

// PuzzleOptions returns the puzzle settings shared by every kind. Clock,
// randomness and sounds are left to the caller.
func (c *Config) PuzzleOptions() puzzle.Options {
	return puzzle.Options{
		Lives:          c.Puzzle.Lives,
		StudyDuration:  time.Duration(c.Puzzle.StudySeconds) * time.Second,
		RevealInterval: time.Duration(c.Puzzle.RevealSeconds) * time.Second,
	}
}

// Tick returns the event loop clock resolution.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.UI.TickMS) * time.Millisecond
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
