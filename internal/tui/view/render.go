// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// OverlayRenderer renders modal overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ToastLayer is a stack of rendered toasts pinned to the top-right corner of
// the canvas, oldest first.
type ToastLayer struct {
	Toasts     []string
	Margin     int
	Background lipgloss.Color
}

// ViewState holds the layers of one frame, bottom to top: the canvas, its
// toasts, the taskbar under the canvas and the modal over everything.
type ViewState struct {
	Width            int
	Height           int
	Canvas           string
	CanvasHeight     int
	Toasts           ToastLayer
	Taskbar          string
	ModalContent     string
	ShowModal        bool
	Overlay          OverlayRenderer
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	base := StackToasts(state.Canvas, state.Toasts, state.Width, state.CanvasHeight)
	switch {
	case base == "":
		base = state.Taskbar
	case state.Taskbar != "":
		base += "\n" + state.Taskbar
	}
	if state.ShowModal && state.Overlay != nil {
		return state.Overlay.Render(base, state.Width, state.Height, state.ModalContent)
	}
	return base
}

// StackToasts paints the toasts down the right edge of a width x height
// canvas. The first toast that would cross the bottom edge is dropped along
// with every later one.
func StackToasts(canvas string, layer ToastLayer, width, height int) string {
	top := layer.Margin
	for _, toast := range layer.Toasts {
		w, h := BlockSize(toast)
		if top+h > height || w+2*layer.Margin > width {
			break
		}
		canvas = SpliceAt(canvas, toast, width-w-layer.Margin, top, width, height, layer.Background)
		top += h
	}
	return canvas
}
