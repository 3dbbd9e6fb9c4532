package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgPanel     lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color
	Danger      lipgloss.Color
	Warning     lipgloss.Color
	Info        lipgloss.Color
	Taskbar     lipgloss.Color

	// IconBg fills an unselected icon tile, IconFocusBg a focused one.
	IconBg      lipgloss.Color
	IconFocusBg lipgloss.Color
	// MarqueeBg tints cells inside the selection rectangle.
	MarqueeBg lipgloss.Color
	// TitleBg fills window title bars.
	TitleBg lipgloss.Color

	TextOnAccent    lipgloss.Color
	TextOnSelection lipgloss.Color
	TextOnDanger    lipgloss.Color

	Modal ModalColors
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg        lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Backdrop  lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := IsLight(t.Bg)
	iconBg := blend(t.Bg, t.Accent, 0.12)
	marquee := blend(t.Bg, t.Accent, 0.25)
	title := blend(t.BgPanel, t.Accent, 0.30)
	backdrop := shade(t.Bg, light, 0.35)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgPanel:     lipgloss.Color(t.BgPanel),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Success:     lipgloss.Color(t.Success),
		Danger:      lipgloss.Color(t.Danger),
		Warning:     lipgloss.Color(t.Warning),
		Info:        lipgloss.Color(t.Info),
		Taskbar:     lipgloss.Color(t.Taskbar),

		IconBg:      lipgloss.Color(iconBg),
		IconFocusBg: lipgloss.Color(blend(t.BgSelection, t.Accent, 0.25)),
		MarqueeBg:   lipgloss.Color(marquee),
		TitleBg:     lipgloss.Color(title),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.BgSelection, t.Bg, t.Fg)),
		TextOnDanger:    lipgloss.Color(chooseTextColor(t.Danger, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:        lipgloss.Color(t.ModalBg),
			Border:    lipgloss.Color(t.ModalBorder),
			Text:      lipgloss.Color(t.TextPrimary),
			Muted:     lipgloss.Color(t.TextMuted),
			Highlight: lipgloss.Color(t.Highlight),
			Backdrop:  lipgloss.Color(backdrop),
		},
	}
}

// NamedAccent returns the named accent of a puzzle briefing, falling back to the
// theme accent.
func (p *Palette) NamedAccent(name string) lipgloss.Color {
	switch name {
	case "red":
		return p.Danger
	case "amber", "yellow":
		return p.Warning
	case "green":
		return p.Success
	case "cyan", "blue":
		return p.Info
	default:
		return p.Accent
	}
}

// IsLight reports whether a background is light enough to need dark text.
func IsLight(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// blend mixes a toward b in Lab space. Unparseable colors return a.
func blend(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = max(0, min(ratio, 1))
	return ca.BlendLab(cb, ratio).Clamped().Hex()
}

// shade darkens a color, more gently on light themes.
func shade(hex string, light bool, ratio float64) string {
	if light {
		return blend(hex, "#000000", ratio/3)
	}
	return blend(hex, "#000000", ratio)
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
