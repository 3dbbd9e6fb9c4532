package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/murkoff/internal/config"
	"github.com/javiermolinar/murkoff/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  murkoff config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(a.configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Session.Password = promptValue(reader, out, "Login password", cfg.Session.Password)
	cfg.Session.SkipBoot = promptBool(reader, out, "Skip boot sequence", cfg.Session.SkipBoot)
	cfg.Desktop.Cols = promptInt(reader, out, "Desktop columns", cfg.Desktop.Cols)
	cfg.Desktop.Rows = promptInt(reader, out, "Desktop rows", cfg.Desktop.Rows)
	cfg.Puzzle.Lives = promptInt(reader, out, "Puzzle lives", cfg.Puzzle.Lives)
	cfg.Puzzle.SequenceRounds = promptInt(reader, out, "Sequence rounds", cfg.Puzzle.SequenceRounds)
	cfg.Puzzle.TranslationRounds = promptInt(reader, out, "Translation rounds", cfg.Puzzle.TranslationRounds)
	cfg.Puzzle.CipherRounds = promptInt(reader, out, "Cipher rounds", cfg.Puzzle.CipherRounds)
	cfg.Audio.Enabled = promptBool(reader, out, "Sound cues", cfg.Audio.Enabled)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[desktop]")
	fmt.Fprintf(w, "  grid             = %dx%d cells of %dx%d\n",
		cfg.Desktop.Cols, cfg.Desktop.Rows, cfg.Desktop.CellWidth, cfg.Desktop.CellHeight)
	fmt.Fprintf(w, "  double_click_ms  = %d\n", cfg.Desktop.DoubleClickMS)
	fmt.Fprintln(w, "\n[session]")
	fmt.Fprintf(w, "  password         = %s\n", strings.Repeat("*", len(cfg.Session.Password)))
	fmt.Fprintf(w, "  skip_boot        = %t\n", cfg.Session.SkipBoot)
	fmt.Fprintln(w, "\n[puzzle]")
	fmt.Fprintf(w, "  rounds           = sequence %d, translation %d, cipher %d\n",
		cfg.Puzzle.SequenceRounds, cfg.Puzzle.TranslationRounds, cfg.Puzzle.CipherRounds)
	fmt.Fprintf(w, "  lives            = %d\n", cfg.Puzzle.Lives)
	fmt.Fprintln(w, "\n[audio]")
	fmt.Fprintf(w, "  enabled          = %t\n", cfg.Audio.Enabled)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme            = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, w io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, w, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && n > 0 {
			return n
		}
		fmt.Fprintf(w, "  Invalid number %q.\n", value)
		if value == strconv.Itoa(current) {
			return current
		}
	}
}

func promptBool(reader *bufio.Reader, w io.Writer, label string, current bool) bool {
	value := promptValue(reader, w, label+" (true/false)", strconv.FormatBool(current))
	b, err := strconv.ParseBool(value)
	if err != nil {
		fmt.Fprintf(w, "  Invalid value %q, keeping %t.\n", value, current)
		return current
	}
	return b
}

func promptTheme(reader *bufio.Reader, w io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, w, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
		if value == current {
			return current
		}
	}
}
