package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

func plainModalStyles() ModalStyles {
	return ModalStyles{
		Frame:        lipgloss.NewStyle(),
		Title:        lipgloss.NewStyle(),
		Footer:       lipgloss.NewStyle(),
		Button:       lipgloss.NewStyle(),
		ButtonActive: lipgloss.NewStyle().Transform(strings.ToUpper),
		Gap:          lipgloss.NewStyle(),
	}
}

// plainLines strips styling and the padding lipgloss adds to short lines.
func plainLines(s string) []string {
	lines := strings.Split(stripANSI(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestDialog_Render(t *testing.T) {
	tests := []struct {
		name   string
		dialog Dialog
		want   []string
	}{
		{name: "title only", dialog: Dialog{Title: "Sequence"}, want: []string{"Sequence"}},
		{name: "body", dialog: Dialog{Title: "Sequence", Body: "one\ntwo"}, want: []string{"Sequence", "", "one", "two"}},
		{name: "footer without body", dialog: Dialog{Title: "Sequence", Footer: "esc"}, want: []string{"Sequence", "", "esc"}},
		{
			name:   "all sections",
			dialog: Dialog{Title: "Sequence", Body: "one", Footer: "esc"},
			want:   []string{"Sequence", "", "one", "", "esc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plainLines(tt.dialog.Render(plainModalStyles()))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderButtons(t *testing.T) {
	buttons := []Button{{Key: "Enter", Label: "Begin"}, {Key: "Esc", Label: "Cancel"}}
	tests := []struct {
		name   string
		active int
		want   string
	}{
		{name: "first active", active: 0, want: "ENTER  BEGIN Esc  Cancel"},
		{name: "second active", active: 1, want: "Enter  Begin ESC  CANCEL"},
		{name: "none active", active: -1, want: "Enter  Begin Esc  Cancel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderButtons(plainModalStyles(), tt.active, buttons...))
			if got != tt.want {
				t.Errorf("RenderButtons() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderButtons_UsesGapStyle(t *testing.T) {
	st := plainModalStyles()
	st.Gap = lipgloss.NewStyle().Transform(func(string) string { return "|" })
	got := stripANSI(RenderButtons(st, -1, Button{Key: "A", Label: "a"}, Button{Key: "B", Label: "b"}))
	if got != "A  a|B  b" {
		t.Fatalf("expected the gap style between buttons, got %q", got)
	}
}
