package view

// ScrollOffset keeps cursor inside a window of rows lines starting at offset.
func ScrollOffset(cursor, offset, rows, total int) int {
	if rows <= 0 || total <= rows {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+rows {
		offset = cursor - rows + 1
	}
	return max(0, min(offset, total-rows))
}

// Renderer renders styled text.
type Renderer interface {
	Render(strs ...string) string
}

// RenderList renders rows lines of items starting at offset, highlighting
// the cursor line.
func RenderList(items []string, cursor, offset, rows, width int, normal, selected Renderer) []string {
	out := make([]string, 0, rows)
	for i := offset; i < len(items) && len(out) < rows; i++ {
		text := FitWidth(items[i], width)
		if i == cursor {
			out = append(out, selected.Render(text))
			continue
		}
		out = append(out, normal.Render(text))
	}
	return out
}
