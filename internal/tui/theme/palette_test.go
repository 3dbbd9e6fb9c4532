package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func base() *Theme {
	t := &Theme{
		Bg:          "#101010",
		BgPanel:     "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Success:     "#00ff00",
		Danger:      "#cc0000",
		Warning:     "#ffaa00",
		Info:        "#00aaff",
	}
	t.applyDefaults()
	return t
}

func TestNewPalette_DerivedShades(t *testing.T) {
	th := base()
	p := NewPalette(th)

	if p.Bg != lipgloss.Color(th.Bg) || p.Taskbar != lipgloss.Color(th.BgPanel) {
		t.Fatalf("expected base colors to pass through")
	}
	bg := relativeLuminance(th.Bg)
	icon := relativeLuminance(string(p.IconBg))
	marquee := relativeLuminance(string(p.MarqueeBg))
	if !(bg < icon && icon < marquee) {
		t.Fatalf("expected icon and marquee tints to step toward the accent: bg=%f icon=%f marquee=%f", bg, icon, marquee)
	}
	if relativeLuminance(string(p.Modal.Backdrop)) > bg {
		t.Fatalf("expected a dark backdrop on a dark theme")
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	th := base()
	p := NewPalette(th)
	if p.Modal.Bg != lipgloss.Color(th.BgPanel) {
		t.Fatalf("Modal.Bg = %q, want %q", p.Modal.Bg, th.BgPanel)
	}
	if p.Modal.Border != lipgloss.Color(th.Accent) {
		t.Fatalf("Modal.Border = %q, want %q", p.Modal.Border, th.Accent)
	}
	if p.Modal.Highlight != lipgloss.Color(th.BgSelection) {
		t.Fatalf("Modal.Highlight = %q, want %q", p.Modal.Highlight, th.BgSelection)
	}
}

func TestNewPalette_NilUsesDefault(t *testing.T) {
	def, err := Load(DefaultName)
	if err != nil {
		t.Fatal(err)
	}
	if got := NewPalette(nil).Bg; got != lipgloss.Color(def.Bg) {
		t.Fatalf("Bg = %q, want %q", got, def.Bg)
	}
}

func TestNamedAccent(t *testing.T) {
	p := NewPalette(base())
	tests := map[string]lipgloss.Color{
		"red":   p.Danger,
		"amber": p.Warning,
		"cyan":  p.Info,
		"":      p.Accent,
		"mauve": p.Accent,
	}
	for name, want := range tests {
		if got := p.NamedAccent(name); got != want {
			t.Errorf("NamedAccent(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestBlend(t *testing.T) {
	if got := blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("blend at 0 = %q", got)
	}
	if got := blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Fatalf("blend at 1 = %q", got)
	}
	if got := blend("oops", "#ffffff", 0.5); got != "oops" {
		t.Fatalf("expected unparseable input to pass through, got %q", got)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
	if !IsLight("#eff1f5") || IsLight("#08162b") {
		t.Fatalf("expected latte to be light and murkoff dark")
	}
}
