package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/murkoff/internal/session"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// Session screen constants.
const (
	loginUser     = "GP-TWO"
	progressWidth = 40
)

// bootSpinner animates the last boot line.
var bootSpinner = spinner.Dot

// renderBoot draws the scrolling boot log.
func (m Model) renderBoot() string {
	st := m.styles
	lines := m.world.session.BootLines()
	if n := max(m.height-2, 0); len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, "")
	for _, line := range lines {
		style := st.BootLineStyle
		if strings.HasPrefix(line, "[OK]") {
			style = st.BootOKStyle
		}
		out = append(out, style.Render("  > "+line))
	}
	frames := bootSpinner.Frames
	i := int(m.world.session.Elapsed()/bootSpinner.FPS) % len(frames)
	out = append(out, st.BootLineStyle.Render("  "+frames[i]+" press any key to skip"))
	return view.PadLinesWithBackground(strings.Join(out, "\n"), m.width, m.height, st.colorBg)
}

// renderLogin draws the centered password box.
func (m Model) renderLogin() string {
	st := m.styles
	lines := []string{
		st.LoginTitle.Render("MURKOFF OS 2026"),
		st.LoginHintStyle.Render("Murkoff Corporation · Terminal Access"),
		"",
		st.LoginHintStyle.Render("User: ") + st.LoginTitle.Render(loginUser),
		"",
		m.login.View(),
		"",
	}
	if m.loginErr != "" {
		lines = append(lines, st.ErrorStyle.Render(m.loginErr))
	} else {
		lines = append(lines, st.LoginHintStyle.Render("Enter to sign in"))
	}
	lines = append(lines, st.LoginHintStyle.Render("Hint: the password is set in the config file"))

	box := st.LoginBoxStyle.Render(strings.Join(lines, "\n"))
	placed := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(st.colorBg))
	return view.PadLinesWithBackground(placed, m.width, m.height, st.colorBg)
}

// renderStartup draws the progress bar shown after a successful login.
func (m Model) renderStartup() string {
	st := m.styles
	pct := m.world.session.Progress()
	bar := progress.New(
		progress.WithGradient(string(st.palette.Accent), string(st.palette.Success)),
		progress.WithWidth(min(progressWidth, max(m.width-8, 10))),
		progress.WithoutPercentage(),
	)

	content := strings.Join([]string{
		st.ScreenStyle.Bold(true).Foreground(st.palette.Accent).Render("MURKOFF OS 2026"),
		"",
		bar.ViewAs(float64(pct) / 100),
		"",
		st.BootLineStyle.Render(fmt.Sprintf("%3d%%  %s", pct, session.StartupMessage(pct))),
	}, "\n")
	placed := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(st.colorBg))
	return view.PadLinesWithBackground(placed, m.width, m.height, st.colorBg)
}
