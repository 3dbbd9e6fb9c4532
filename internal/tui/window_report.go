package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/clock"
	"github.com/javiermolinar/murkoff/internal/tui/commands"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// decryptLineGap paces the decryption preamble.
const decryptLineGap = 120 * time.Millisecond

// reportWindow shows a bundled report after a short decryption preamble.
type reportWindow struct {
	name  string
	path  string
	clock *clock.Clock

	loaded   bool
	err      error
	report   catalog.Report
	text     string
	decrypt  []string
	openedAt time.Duration
	skipped  bool

	vp     viewport.Model
	styles *Styles
}

func newReportWindow(name, path string, clk *clock.Clock) *reportWindow {
	return &reportWindow{
		name:  name,
		path:  path,
		clock: clk,
		vp:    viewport.New(1, 1),
	}
}

func (r *reportWindow) Title() string {
	if r.loaded && r.report.Number != "" {
		return "Report N°" + r.report.Number + " · " + r.name
	}
	return r.name
}

func (r *reportWindow) Hint() string {
	if r.decrypting() {
		return "any key skip  esc close"
	}
	return "↑↓ pgup pgdn scroll  c copy  esc close"
}

func (r *reportWindow) Resize(w, h int) {
	r.vp.Width = max(w, 1)
	r.vp.Height = max(h, 1)
	r.refresh()
}

// setReport stores the loaded text and starts the preamble.
func (r *reportWindow) setReport(msg commands.ReportLoadedMsg) {
	r.loaded = true
	r.report = msg.Report
	r.text = msg.Text
	r.decrypt = catalog.DecryptLines(msg.Report.Number)
	r.openedAt = r.clock.Now()
	r.refresh()
}

// visibleDecrypt returns how many preamble lines are shown.
func (r *reportWindow) visibleDecrypt() int {
	if r.skipped {
		return len(r.decrypt)
	}
	n := int((r.clock.Now() - r.openedAt) / decryptLineGap)
	return max(0, min(n, len(r.decrypt)))
}

func (r *reportWindow) decrypting() bool {
	return r.loaded && r.err == nil && r.visibleDecrypt() < len(r.decrypt)
}

func (r *reportWindow) Body(w, h int, st *Styles) []string {
	if r.styles != st {
		r.styles = st
		r.refresh()
	}
	switch {
	case r.err != nil:
		return []string{
			st.DangerStyle.Render(" [ERROR] " + r.err.Error()),
			st.MutedStyle.Render(" The document could not be retrieved."),
		}
	case !r.loaded:
		return []string{st.MutedStyle.Render(" > Connecting to archive...")}
	case r.decrypting():
		lines := r.decrypt[:r.visibleDecrypt()]
		if len(lines) > h {
			lines = lines[len(lines)-h:]
		}
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = decryptStyle(line, st).Render(" " + line)
		}
		return out
	}
	return strings.Split(r.vp.View(), "\n")
}

func decryptStyle(line string, st *Styles) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "[OK]"):
		return st.SuccessStyle
	case strings.HasPrefix(line, "["):
		return st.WarningStyle
	default:
		return st.MutedStyle
	}
}

// refresh rebuilds the viewport content for the current width.
func (r *reportWindow) refresh() {
	if !r.loaded || r.styles == nil {
		return
	}
	st := r.styles
	w := r.vp.Width
	wrapW := max(w-2, 10)

	var lines []string
	for _, h := range r.report.Header {
		lines = append(lines, st.ReportTitleStyle.Render(view.FitWidth(" "+h, w)))
	}
	for _, sec := range r.report.Sections {
		lines = append(lines, "", st.AccentStyle.Render(" "+sec.Heading))
		for _, line := range sec.Lines {
			for _, wrapped := range strings.Split(wordwrap.String(line, wrapW), "\n") {
				lines = append(lines, st.ListStyle.Render(" "+wrapped))
			}
		}
	}
	r.vp.SetContent(strings.Join(lines, "\n"))
}

func (r *reportWindow) Key(msg tea.KeyMsg, wd *world) bool {
	if msg.String() == "esc" {
		return false
	}
	if r.decrypting() {
		r.skipped = true
		return true
	}
	switch msg.String() {
	case "c":
		if r.loaded {
			wd.pending = append(wd.pending, commands.CopyToClipboard(r.text, "report "+r.report.Number))
		}
	case "home", "g":
		r.vp.GotoTop()
	case "end", "G":
		r.vp.GotoBottom()
	default:
		r.vp, _ = r.vp.Update(msg)
	}
	return true
}

func (r *reportWindow) Click(int, *world) {
	if r.decrypting() {
		r.skipped = true
	}
}
