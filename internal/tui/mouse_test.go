package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/murkoff/internal/desktop"
	"github.com/javiermolinar/murkoff/internal/grid"
	"github.com/javiermolinar/murkoff/internal/notify"
)

func press(x, y int, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: b, Action: tea.MouseActionPress}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	m = send(t, m, press(x, y, tea.MouseButtonLeft))
	return send(t, m, release(x, y))
}

func TestMouse_DragCommitsToNearestFreeCell(t *testing.T) {
	m := newDesktopModel(t)
	store := m.world.desktop.Store()
	if got, _ := store.Get(iconExplorer); got != (grid.Cell{Col: 0, Row: 0}) {
		t.Fatalf("explorer starts at %+v", got)
	}

	m = send(t, m, press(2, 2, tea.MouseButtonLeft))
	m = send(t, m, motion(14, 2))
	if got := m.world.desktop.Mode(); got != desktop.ModeDragging {
		t.Fatalf("mode = %v, want dragging", got)
	}
	m = send(t, m, motion(26, 2))
	m = send(t, m, release(26, 2))

	if got, _ := store.Get(iconExplorer); got != (grid.Cell{Col: 2, Row: 0}) {
		t.Errorf("explorer dropped at %+v, want col 2 row 0", got)
	}
	if got := m.world.desktop.Mode(); got != desktop.ModeIdle {
		t.Errorf("mode after release = %v, want idle", got)
	}
	if len(m.world.windows) != 0 {
		t.Errorf("drag opened a window")
	}
}

func TestMouse_DropOnOccupiedCellFindsFreeNeighbour(t *testing.T) {
	m := newDesktopModel(t)
	store := m.world.desktop.Store()
	target := grid.Cell{Col: 1, Row: 0}
	occupant := ""
	for _, pl := range store.Placements() {
		if pl.Cell == target {
			occupant = pl.IconID
		}
	}
	if occupant == "" {
		t.Fatalf("no icon at %+v", target)
	}

	// Drop the explorer onto the icon at the top of the second column.
	m = send(t, m, press(2, 2, tea.MouseButtonLeft))
	m = send(t, m, motion(14, 2))
	m = send(t, m, release(14, 2))

	got, _ := store.Get(iconExplorer)
	if got == target {
		t.Fatalf("explorer stacked on %s at %+v", occupant, got)
	}
	if grid.Chebyshev(got, target) != 1 {
		t.Errorf("explorer at %+v is not next to the target %+v", got, target)
	}
	if still, _ := store.Get(occupant); still != target {
		t.Errorf("%s moved to %+v", occupant, still)
	}
}

func TestMouse_DoubleClickOpensIcon(t *testing.T) {
	m := newDesktopModel(t)
	m = click(t, m, 2, 2)
	if len(m.world.windows) != 0 {
		t.Fatalf("single click opened a window")
	}
	if !m.world.desktop.IsSelected(iconExplorer) {
		t.Fatalf("single click did not select the icon")
	}

	m = click(t, m, 2, 2)
	win, ok := m.world.top()
	if !ok {
		t.Fatalf("double click opened nothing")
	}
	if _, ok := win.(*explorerWindow); !ok {
		t.Errorf("top window = %T, want *explorerWindow", win)
	}
}

func TestMouse_DoubleClickExpires(t *testing.T) {
	m := newDesktopModel(t)
	m = click(t, m, 2, 2)
	m.world.clock.Advance(m.config.DoubleClick() + 1)
	m = click(t, m, 2, 2)
	if len(m.world.windows) != 0 {
		t.Errorf("slow second click opened a window")
	}
}

func TestMouse_DisabledIconShowsToast(t *testing.T) {
	m := newDesktopModel(t)
	store := m.world.desktop.Store()
	cell, ok := store.Get("chrome")
	if !ok {
		t.Fatalf("chrome icon not placed")
	}
	p := store.Geometry().ToPixel(cell)
	m = click(t, m, p.X+1, p.Y+1)
	m = click(t, m, p.X+1, p.Y+1)

	if len(m.world.windows) != 0 {
		t.Errorf("disabled icon opened a window")
	}
	if !hasToast(m, notify.KindError, "Access restricted") {
		t.Errorf("toasts = %v, want Access restricted", toastTitles(m))
	}
}

func TestMouse_MarqueeSelectsTouchedIcons(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, press(12, 8, tea.MouseButtonLeft))
	if got := m.world.desktop.Mode(); got != desktop.ModeSelecting {
		t.Fatalf("mode = %v, want selecting", got)
	}
	m = send(t, m, motion(0, 0))
	m = send(t, m, release(0, 0))

	want := []string{iconExplorer, iconRecycle}
	if diff := cmp.Diff(want, m.world.desktop.Selected()); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestMouse_ShiftClickTogglesSelection(t *testing.T) {
	m := newDesktopModel(t)
	m = click(t, m, 2, 2)

	msg := press(2, 6, tea.MouseButtonLeft)
	msg.Shift = true
	m = send(t, m, msg)
	m = send(t, m, release(2, 6))

	want := []string{iconExplorer, iconRecycle}
	if diff := cmp.Diff(want, m.world.desktop.Selected()); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestMouse_ContextMenuRunsEntry(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, press(60, 20, tea.MouseButtonRight))
	menu, ok := m.world.desktop.Menu()
	if !ok {
		t.Fatalf("right click on the wallpaper did not open the menu")
	}
	if menu.Pos != (grid.Point{X: 60, Y: 20}) {
		t.Errorf("menu at %+v", menu.Pos)
	}
	if !strings.Contains(plainView(m), "Open Explorer") {
		t.Errorf("menu not drawn")
	}

	// First entry sits below the top border.
	m = click(t, m, 62, 21)
	if _, ok := m.world.desktop.Menu(); ok {
		t.Errorf("menu still open after choosing an entry")
	}
	win, ok := m.world.top()
	if !ok {
		t.Fatalf("menu entry opened nothing")
	}
	if _, ok := win.(*explorerWindow); !ok {
		t.Errorf("top window = %T, want *explorerWindow", win)
	}
}

func TestMouse_WindowCloseButton(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("e"))
	if len(m.world.windows) != 1 {
		t.Fatalf("windows = %d, want 1", len(m.world.windows))
	}
	left, top, w, _ := windowRect(testWidth, testHeight)
	m = click(t, m, left+w-3, top+1)
	if len(m.world.windows) != 0 {
		t.Errorf("close button did not close the window")
	}
}

func TestMouse_WindowBodyClickOpensFolder(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("e"))
	left, top, _, _ := windowRect(testWidth, testHeight)
	x, y := left+4, top+2+explorerHeader

	m = click(t, m, x, y)
	ex := m.world.windows[0].(*explorerWindow)
	cur, ok := ex.nav.Current()
	if !ok || cur.ID != "research-01" {
		t.Errorf("current folder = %+v, want research-01", cur)
	}
}

func TestMouse_TaskbarRaisesWindow(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("r"))
	m = send(t, m, runes("m"))
	if _, ok := m.world.windows[1].(*mailWindow); !ok {
		t.Fatalf("mail is not on top")
	}

	buttons := taskbarButtons(m.world)
	m = send(t, m, press(buttons[1].x+1, testHeight-1, tea.MouseButtonLeft))
	if _, ok := m.world.windows[1].(*recycleWindow); !ok {
		t.Errorf("taskbar click did not raise the recycle bin")
	}
}

func TestMouse_ModalSwallowsPointer(t *testing.T) {
	m := newDesktopModel(t)
	m.world.startRestore(m.world.bin.Items()[0])
	m = send(t, m, press(2, 2, tea.MouseButtonLeft))
	if got := m.world.desktop.Mode(); got != desktop.ModeIdle {
		t.Errorf("pointer reached the desktop under the modal: %v", got)
	}
	m.world.closeModal()
}
