package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/murkoff/internal/notify"
	"github.com/javiermolinar/murkoff/internal/tui/theme"
	"github.com/javiermolinar/murkoff/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg      lipgloss.Color
	colorPanel   lipgloss.Color
	colorTaskbar lipgloss.Color

	// Desktop canvas, indexed by cellStyle
	canvas []lipgloss.Style

	// Taskbar
	TaskbarStyle       lipgloss.Style
	TaskbarItemStyle   lipgloss.Style
	TaskbarActiveStyle lipgloss.Style
	TaskbarClockStyle  lipgloss.Style
	TaskbarBadgeStyle  lipgloss.Style

	// Windows
	Window           view.WindowStyles
	ListStyle        lipgloss.Style
	ListCursorStyle  lipgloss.Style
	PathStyle        lipgloss.Style
	MutedStyle       lipgloss.Style
	AccentStyle      lipgloss.Style
	DangerStyle      lipgloss.Style
	SuccessStyle     lipgloss.Style
	WarningStyle     lipgloss.Style
	UnreadStyle      lipgloss.Style
	SentBubbleStyle  lipgloss.Style
	RecvBubbleStyle  lipgloss.Style
	ReportTitleStyle lipgloss.Style

	// Inputs
	InputTextStyle        lipgloss.Style
	InputPlaceholderStyle lipgloss.Style
	InputCursorStyle      lipgloss.Style

	// Modal
	Modal              view.ModalStyles
	ModalBgColor       lipgloss.Color
	ModalBackdropColor lipgloss.Color
	ModalBackdropStyle lipgloss.Style
	ModalTextStyle     lipgloss.Style
	ModalMutedStyle    lipgloss.Style
	ModalHintStyle     lipgloss.Style

	// Toasts
	toasts map[notify.Kind]view.ToastStyles

	// Session screens
	ScreenStyle    lipgloss.Style
	BootLineStyle  lipgloss.Style
	BootOKStyle    lipgloss.Style
	LoginBoxStyle  lipgloss.Style
	LoginTitle     lipgloss.Style
	LoginHintStyle lipgloss.Style
	ErrorStyle     lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{
		palette:      p,
		colorBg:      p.Bg,
		colorPanel:   p.BgPanel,
		colorTaskbar: p.Taskbar,
	}

	wall := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
	s.canvas = make([]lipgloss.Style, styleCount)
	s.canvas[styleWallpaper] = wall
	s.canvas[styleIcon] = wall.Foreground(p.Fg)
	s.canvas[styleIconGlyph] = wall.Foreground(p.Accent)
	s.canvas[styleIconSelected] = lipgloss.NewStyle().Background(p.BgSelection).Foreground(p.TextOnSelection)
	s.canvas[styleIconFocused] = lipgloss.NewStyle().Background(p.IconFocusBg).Foreground(p.TextOnSelection).Bold(true)
	s.canvas[styleIconDisabled] = wall.Foreground(p.FgMuted)
	s.canvas[styleIconDragging] = lipgloss.NewStyle().Background(p.IconBg).Foreground(p.Accent).Bold(true)
	s.canvas[styleMarquee] = lipgloss.NewStyle().Background(p.MarqueeBg).Foreground(p.Fg)
	s.canvas[styleMenu] = lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.Fg)
	s.canvas[styleMenuBorder] = lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.Accent)
	s.canvas[styleWatermark] = wall.Foreground(p.IconBg)

	s.TaskbarStyle = lipgloss.NewStyle().Background(p.Taskbar).Foreground(p.Fg)
	s.TaskbarItemStyle = s.TaskbarStyle.Padding(0, 1)
	s.TaskbarActiveStyle = lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Padding(0, 1).Bold(true)
	s.TaskbarClockStyle = s.TaskbarStyle.Foreground(p.FgMuted).Padding(0, 1)
	s.TaskbarBadgeStyle = lipgloss.NewStyle().Background(p.Danger).Foreground(p.TextOnDanger).Padding(0, 1)

	body := lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.Fg)
	s.Window = view.WindowStyles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			BorderBackground(p.Bg).
			Background(p.BgPanel),
		Title: lipgloss.NewStyle().Background(p.TitleBg).Foreground(p.Fg).Bold(true),
		Close: lipgloss.NewStyle().Background(p.TitleBg).Foreground(p.Danger).Bold(true),
		Body:  body,
		Hint:  body.Foreground(p.FgMuted),
	}
	s.ListStyle = body
	s.ListCursorStyle = lipgloss.NewStyle().Background(p.BgSelection).Foreground(p.TextOnSelection)
	s.PathStyle = body.Foreground(p.Info)
	s.MutedStyle = body.Foreground(p.FgMuted)
	s.AccentStyle = body.Foreground(p.Accent).Bold(true)
	s.DangerStyle = body.Foreground(p.Danger).Bold(true)
	s.SuccessStyle = body.Foreground(p.Success)
	s.WarningStyle = body.Foreground(p.Warning)
	s.UnreadStyle = body.Bold(true)
	s.SentBubbleStyle = lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Padding(0, 1)
	s.RecvBubbleStyle = lipgloss.NewStyle().Background(p.BgSelection).Foreground(p.TextOnSelection).Padding(0, 1)
	s.ReportTitleStyle = body.Foreground(p.Warning).Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().Foreground(p.Modal.Text).Background(p.Modal.Bg)
	s.InputPlaceholderStyle = lipgloss.NewStyle().Foreground(p.Modal.Muted).Background(p.Modal.Bg)
	s.InputCursorStyle = lipgloss.NewStyle().Foreground(p.Modal.Highlight)

	s.ModalBgColor = p.Modal.Bg
	s.ModalBackdropColor = p.Modal.Backdrop
	s.ModalBackdropStyle = lipgloss.NewStyle().Background(p.Modal.Backdrop).Foreground(p.FgMuted)
	modalText := lipgloss.NewStyle().Foreground(p.Modal.Text).Background(p.Modal.Bg)
	s.ModalTextStyle = modalText
	s.ModalMutedStyle = modalText.Foreground(p.Modal.Muted)
	s.ModalHintStyle = modalText.Foreground(p.Modal.Muted).Italic(true)
	s.Modal = view.ModalStyles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Modal.Border).
			BorderBackground(p.Modal.Bg).
			Background(p.Modal.Bg).
			Padding(1, 2),
		Title:        modalText.Foreground(p.Accent).Bold(true),
		Footer:       modalText.Foreground(p.Modal.Muted),
		Button:       modalText.Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Padding(0, 2).Bold(true),
		Gap:          modalText,
	}

	s.toasts = make(map[notify.Kind]view.ToastStyles)
	for kind, color := range map[notify.Kind]lipgloss.Color{
		notify.KindSuccess: p.Success,
		notify.KindError:   p.Danger,
		notify.KindWarning: p.Warning,
		notify.KindInfo:    p.Info,
	} {
		s.toasts[kind] = view.ToastStyles{
			Box: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(color).
				BorderBackground(p.Bg).
				Background(p.BgPanel).
				Padding(0, 1),
			Title:   body.Foreground(color).Bold(true),
			Message: body,
		}
	}

	s.ScreenStyle = lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)
	s.BootLineStyle = s.ScreenStyle.Foreground(p.FgMuted)
	s.BootOKStyle = s.ScreenStyle.Foreground(p.Success)
	s.LoginBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Accent).
		BorderBackground(p.Bg).
		Background(p.BgPanel).
		Foreground(p.Fg).
		Padding(1, 3)
	s.LoginTitle = lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.Accent).Bold(true)
	s.LoginHintStyle = lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.FgMuted)
	s.ErrorStyle = lipgloss.NewStyle().Background(p.BgPanel).Foreground(p.Danger).Bold(true)

	return s
}

// Toast returns the toast styles for a notification kind.
func (s *Styles) Toast(kind notify.Kind) view.ToastStyles {
	if st, ok := s.toasts[kind]; ok {
		return st
	}
	return s.toasts[notify.KindInfo]
}

// Accent returns the named briefing accent as a text style on the modal background.
func (s *Styles) Accent(name string) lipgloss.Style {
	return s.ModalTextStyle.Foreground(s.palette.NamedAccent(name)).Bold(true)
}
