// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/catalog"
)

// TickMsg advances the simulation clock.
type TickMsg struct {
	At time.Time
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Context string
	Err     error
}

// ReportLoadedMsg is sent when a report text has been read.
type ReportLoadedMsg struct {
	Path   string
	Title  string
	Report catalog.Report
	Text   string
}

// CopiedMsg is sent when text reached the clipboard.
type CopiedMsg struct {
	What string
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Tick schedules the next clock step.
func Tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}

// LoadReport reads and parses a bundled report.
func LoadReport(path, title string) tea.Cmd {
	return func() tea.Msg {
		text, err := catalog.ReadReport(path)
		if err != nil {
			return ErrMsg{Context: "opening " + title, Err: err}
		}
		return ReportLoadedMsg{
			Path:   path,
			Title:  title,
			Report: catalog.ParseReport(text),
			Text:   text,
		}
	}
}

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Context: "copying " + what, Err: fmt.Errorf("writing clipboard: %w", err)}
		}
		return CopiedMsg{What: what}
	}
}
