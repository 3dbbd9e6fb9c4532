// Package tui provides the terminal user interface for murkoff.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/clock"
	"github.com/javiermolinar/murkoff/internal/config"
	"github.com/javiermolinar/murkoff/internal/tui/commands"
	"github.com/javiermolinar/murkoff/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Shared simulation state
	world *world

	// Components
	login   textinput.Model
	overlay OverlayModel

	// Terminal dimensions
	width  int
	height int

	// Error state
	loginErr string
	quitting bool
}

// ModelOption configures optional model behavior.
type ModelOption func(*modelOptions)

type modelOptions struct {
	catalog *catalog.Catalog
	clock   *clock.Clock
	sounds  io.Writer
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *catalog.Catalog) ModelOption {
	return func(o *modelOptions) {
		o.catalog = c
	}
}

// WithClock drives the model from an existing clock.
func WithClock(c *clock.Clock) ModelOption {
	return func(o *modelOptions) {
		o.clock = c
	}
}

// WithSoundOutput sets where the terminal bell is written. Nil mutes sounds.
func WithSoundOutput(w io.Writer) ModelOption {
	return func(o *modelOptions) {
		o.sounds = w
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) (Model, error) {
	o := modelOptions{sounds: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		cat, err := catalog.Default()
		if err != nil {
			return Model{}, fmt.Errorf("loading catalog: %w", err)
		}
		o.catalog = cat
	}
	if o.clock == nil {
		o.clock = clock.New()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return Model{}, fmt.Errorf("loading theme: %w", err)
	}
	styles := NewStyles(t)

	login := textinput.New()
	login.Placeholder = "password"
	login.EchoMode = textinput.EchoPassword
	login.EchoCharacter = '•'
	login.CharLimit = 32
	login.Width = 24
	login.PromptStyle = styles.InputTextStyle
	login.TextStyle = styles.InputTextStyle
	login.PlaceholderStyle = styles.InputPlaceholderStyle
	login.Cursor.Style = styles.InputCursorStyle
	login.Cursor.TextStyle = styles.InputTextStyle
	login.Cursor.SetMode(cursor.CursorStatic)
	login.Focus()

	overlay := NewOverlayModel()
	overlay.SetBackground(styles.ModalBgColor)
	overlay.SetBackdrop(styles.ModalBackdropStyle)

	sounds := soundPlayer(cfg.Audio.Enabled, o.sounds)
	return Model{
		config:  cfg,
		theme:   t,
		styles:  styles,
		world:   newWorld(cfg, o.catalog, o.clock, sounds),
		login:   login,
		overlay: overlay,
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.Tick(m.config.Tick())
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model, err := New(cfg)
	if err != nil {
		return err
	}
	defer model.world.close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
