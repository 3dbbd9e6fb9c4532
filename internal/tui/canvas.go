package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/javiermolinar/murkoff/internal/desktop"
	"github.com/javiermolinar/murkoff/internal/grid"
)

// cellStyle indexes Styles.canvas.
type cellStyle uint8

const (
	styleWallpaper cellStyle = iota
	styleIcon
	styleIconGlyph
	styleIconSelected
	styleIconFocused
	styleIconDisabled
	styleIconDragging
	styleMarquee
	styleMenu
	styleMenuBorder
	styleWatermark
	styleCount
)

const watermark = "M U R K O F F   O S   2 0 2 6"

// canvas is a character buffer with one style per cell.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]cellStyle
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.runes = make([][]rune, c.h)
	c.styles = make([][]cellStyle, c.h)
	for y := range c.h {
		c.runes[y] = []rune(strings.Repeat(" ", c.w))
		c.styles[y] = make([]cellStyle, c.w)
	}
	return c
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// text writes s at (x, y), clipped to the canvas.
func (c *canvas) text(x, y int, s string, st cellStyle) {
	for _, r := range s {
		if c.in(x, y) {
			c.runes[y][x] = r
			c.styles[y][x] = st
		}
		x++
	}
}

// fill paints a w x h block with spaces.
func (c *canvas) fill(x, y, w, h int, st cellStyle) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if c.in(col, row) {
				c.runes[row][col] = ' '
				c.styles[row][col] = st
			}
		}
	}
}

// tint restyles wallpaper cells of an inclusive rectangle.
func (c *canvas) tint(r grid.Rect, st cellStyle) {
	for row := r.Y; row <= r.Y+r.H; row++ {
		for col := r.X; col <= r.X+r.W; col++ {
			if c.in(col, row) && c.styles[row][col] == styleWallpaper {
				c.styles[row][col] = st
			}
		}
	}
}

// render joins the buffer into lines, one lipgloss render per style run.
func (c *canvas) render(styles []lipgloss.Style) string {
	lines := make([]string, c.h)
	var b strings.Builder
	for y := range c.h {
		b.Reset()
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			b.WriteString(styles[c.styles[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// drawDesktop paints the wallpaper, marquee, icons and context menu.
func drawDesktop(d *desktop.Desktop, w, h int) *canvas {
	c := newCanvas(w, h)
	geo := d.Store().Geometry()

	if wm := ansi.StringWidth(watermark); w > wm+2 && h > 2 {
		c.text(w-wm-2, h-2, watermark, styleWatermark)
	}

	if mq, ok := d.ActiveMarquee(); ok {
		c.tint(mq.Rect(), styleMarquee)
	}

	for _, v := range d.Layout() {
		drawIcon(c, v, geo.IconW, geo.IconH)
	}

	if menu, ok := d.Menu(); ok {
		drawMenu(c, menu)
	}
	return c
}

func drawIcon(c *canvas, v desktop.IconView, w, h int) {
	body, glyph := styleIcon, styleIconGlyph
	switch {
	case v.Dragging:
		body, glyph = styleIconDragging, styleIconDragging
	case v.Focused && v.Selected:
		body, glyph = styleIconFocused, styleIconFocused
	case v.Selected:
		body, glyph = styleIconSelected, styleIconSelected
	case v.Focused:
		body, glyph = styleIconFocused, styleIconFocused
	case v.Icon.Disabled:
		body, glyph = styleIconDisabled, styleIconDisabled
	}
	if body != styleIcon {
		c.fill(v.Pos.X, v.Pos.Y, w, h, body)
	}

	c.text(v.Pos.X+centerOffset(v.Icon.Kind.Glyph(), w), v.Pos.Y, v.Icon.Kind.Glyph(), glyph)
	for i, line := range iconLabel(v.Icon.Label, w, h-1) {
		c.text(v.Pos.X+centerOffset(line, w), v.Pos.Y+1+i, line, body)
	}
}

// iconLabel wraps a label onto at most rows lines of w cells. Overflow is
// cut with an ellipsis.
func iconLabel(label string, w, rows int) []string {
	if rows <= 0 || w <= 0 {
		return nil
	}
	lines := strings.Split(wordwrap.String(label, w), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
		lines[rows-1] = ansi.Truncate(lines[rows-1]+"…", w, "…")
	}
	for i, line := range lines {
		if ansi.StringWidth(line) > w {
			lines[i] = ansi.Truncate(line, w, "…")
		}
	}
	return lines
}

func centerOffset(s string, w int) int {
	return max((w-ansi.StringWidth(s))/2, 0)
}

func drawMenu(c *canvas, menu desktop.ContextMenu) {
	w := menu.Width()
	x, y := menu.Pos.X, menu.Pos.Y
	inner := w - 2
	c.text(x, y, "┌"+strings.Repeat("─", inner)+"┐", styleMenuBorder)
	for i, it := range menu.Items {
		c.text(x, y+1+i, "│", styleMenuBorder)
		c.text(x+1, y+1+i, " "+padRight(it.Label, inner-1), styleMenu)
		c.text(x+w-1, y+1+i, "│", styleMenuBorder)
	}
	c.text(x, y+1+len(menu.Items), "└"+strings.Repeat("─", inner)+"┘", styleMenuBorder)
}

func padRight(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
