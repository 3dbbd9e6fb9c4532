package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = line
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// RenderModalOverlay centers modalContent and splices it over the base content.
func RenderModalOverlay(baseContent, modalContent string, width, height int, modalBg lipgloss.Color) string {
	modalW, modalH := BlockSize(modalContent)
	if modalW == 0 || modalH == 0 {
		return baseContent
	}
	modalW = min(modalW, width)
	top := max((height-modalH)/2, 0)
	left := max((width-modalW)/2, 0)
	return SpliceAt(baseContent, modalContent, left, top, width, height, modalBg)
}

// BlockSize returns the widest line and the line count of a rendered block.
func BlockSize(block string) (int, int) {
	if block == "" {
		return 0, 0
	}
	lines := strings.Split(block, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return w, len(lines)
}

// SpliceAt paints block over base with its top-left corner at (left, top).
// Block lines are padded to a common width with blockBg; parts falling
// outside width x height are cut.
func SpliceAt(baseContent, block string, left, top, width, height int, blockBg lipgloss.Color) string {
	blockW, blockH := BlockSize(block)
	if blockW == 0 || width <= 0 || height <= 0 {
		return baseContent
	}
	blockW = min(blockW, width-left)
	if blockW <= 0 {
		return baseContent
	}

	blockLines := strings.Split(block, "\n")
	for i, line := range blockLines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > blockW {
			line = ansi.Cut(line, 0, blockW)
		}
		if lineWidth < blockW {
			paddingStyle := lipgloss.NewStyle().Background(blockBg)
			line += paddingStyle.Render(strings.Repeat(" ", blockW-lineWidth))
		}
		line = ApplyModalBackgroundResets(line, blockBg)
		blockLines[i] = line + ansi.ResetStyle
	}

	emptyBg := lipgloss.Color("")
	baseLines := strings.Split(PadLinesWithBackground(baseContent, width, height, emptyBg), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+blockH {
			lines = append(lines, baseLines[row])
			continue
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+blockW, width)
		lines = append(lines, leftSlice+blockLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// ApplyModalBackgroundResets reapplies modal background after ANSI resets.
func ApplyModalBackgroundResets(line string, modalBg lipgloss.Color) string {
	bgSeq := ModalBackgroundSeq(modalBg)
	if bgSeq == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

// ModalBackgroundSeq returns the background escape sequence for the modal color.
func ModalBackgroundSeq(modalBg lipgloss.Color) string {
	if modalBg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(modalBg))).String()
}
