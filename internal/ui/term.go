package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Folders and unread mail: bold cyan
	colorFolder = color.New(color.FgCyan, color.Bold)

	// Locked and restricted entries: red
	colorLocked = color.New(color.FgRed)

	// Flags and classifications: yellow to make it pop
	colorFlag = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatFolder(s string) string {
	return colorFolder.Sprint(s)
}

func formatLocked(s string) string {
	return colorLocked.Sprint(s)
}

func formatFlag(s string) string {
	return colorFlag.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
