package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/clock"
	"github.com/javiermolinar/murkoff/internal/config"
	"github.com/javiermolinar/murkoff/internal/desktop"
	"github.com/javiermolinar/murkoff/internal/explorer"
	"github.com/javiermolinar/murkoff/internal/grid"
	"github.com/javiermolinar/murkoff/internal/mail"
	"github.com/javiermolinar/murkoff/internal/notify"
	"github.com/javiermolinar/murkoff/internal/puzzle"
	"github.com/javiermolinar/murkoff/internal/recycle"
	"github.com/javiermolinar/murkoff/internal/session"
	"github.com/javiermolinar/murkoff/internal/tui/commands"
)

// Icon ids of the static desktop entries.
const (
	iconExplorer = "explorer"
	iconRecycle  = "recycle-bin"
	iconMail     = "mail"
)

// disabledApps are shown on the desktop but refuse to start.
var disabledApps = []struct{ id, label string }{
	{"chrome", "Chrome"},
	{"firefox", "Firefox"},
	{"edge", "Edge"},
}

// world is the mutable state shared by every copy of Model. Icon actions and
// restore callbacks close over it.
type world struct {
	cfg     *config.Config
	clock   *clock.Clock
	sounds  notify.Player
	catalog *catalog.Catalog

	session *session.Session
	desktop *desktop.Desktop
	bin     *recycle.Bin
	mailbox *mail.Mailbox
	notes   *notify.Center

	windows  []window
	modal    *puzzleModal
	restored []catalog.Item

	width, height int
	lastTick      time.Time
	pending       []tea.Cmd
	now           func() time.Time
}

func newWorld(cfg *config.Config, cat *catalog.Catalog, clk *clock.Clock, sounds notify.Player) *world {
	w := &world{
		cfg:     cfg,
		clock:   clk,
		sounds:  sounds,
		catalog: cat,
		mailbox: mail.New(cat.Mail()),
		now:     time.Now,
	}
	w.notes = notify.NewCenter(clk, notify.WithSounds(sounds))

	opts := cfg.PuzzleOptions()
	opts.Clock = clk
	opts.Sounds = sounds
	w.bin = recycle.New(cat.Recycled(),
		recycle.WithPuzzleOptions(opts),
		recycle.WithRounds(cfg.Rounds()),
		recycle.WithRestoreCallback(w.onRestore),
	)

	w.session = session.New(session.Options{
		Clock:    clk,
		Sounds:   sounds,
		Password: cfg.Session.Password,
		Boot:     time.Duration(cfg.Session.BootMS) * time.Millisecond,
		Startup:  time.Duration(cfg.Session.StartupMS) * time.Millisecond,
		LineGap:  time.Duration(cfg.Session.BootLineMS) * time.Millisecond,
		SkipBoot: cfg.Session.SkipBoot,
		OnStage:  w.onStage,
	})
	return w
}

func (w *world) onStage(stage session.Stage) {
	LogStageChange(stage)
	if stage == session.StageDesktop {
		w.ensureDesktop()
	}
}

// fitGeometry shrinks the configured lattice to the desktop area.
func fitGeometry(geo grid.Geometry, width, height int) grid.Geometry {
	if width <= 0 || height <= 0 {
		return geo
	}
	cols := (width - 2*geo.Padding) / geo.CellW
	rows := (height - 2*geo.Padding) / geo.CellH
	geo.Cols = max(1, min(geo.Cols, cols))
	geo.Rows = max(1, min(geo.Rows, rows))
	return geo
}

// ensureDesktop builds the desktop the first time it is needed, sized to
// the terminal known at that point.
func (w *world) ensureDesktop() {
	if w.desktop != nil {
		return
	}
	geo := fitGeometry(w.cfg.Geometry(), w.width, w.desktopHeight())
	store := grid.NewStore(geo)
	w.desktop = desktop.New(store, w.icons(),
		desktop.WithClock(w.clock),
		desktop.WithThresholds(w.cfg.Desktop.DragThreshold, w.cfg.Desktop.MarqueeThreshold),
		desktop.WithDoubleClick(w.cfg.DoubleClick()),
		desktop.WithMenu(w.menu()...),
		desktop.WithRestoredAction(func(it desktop.RestoredItem) func() error {
			return func() error {
				w.openExplorer(explorer.WithInitialFolder(it.ID))
				return nil
			}
		}),
	)
}

func (w *world) desktopHeight() int {
	return max(w.height-1, 0)
}

func (w *world) icons() []desktop.Icon {
	icons := []desktop.Icon{
		{ID: iconExplorer, Label: "This PC", Kind: desktop.KindApp, Action: func() error {
			w.openExplorer()
			return nil
		}},
		{ID: iconRecycle, Label: recycle.RootName, Kind: desktop.KindTrash, Action: func() error {
			w.openRecycle()
			return nil
		}},
		{ID: iconMail, Label: "Mail", Kind: desktop.KindMail, Action: func() error {
			w.openMail()
			return nil
		}},
	}
	for _, it := range w.catalog.Files() {
		id := it.ID
		icons = append(icons, desktop.Icon{ID: id, Label: it.Name, Kind: desktop.KindFolder, Action: func() error {
			w.openExplorer(explorer.WithInitialFolder(id))
			return nil
		}})
	}
	for _, app := range disabledApps {
		icons = append(icons, desktop.Icon{ID: app.id, Label: app.label, Kind: desktop.KindApp, Disabled: true})
	}
	return icons
}

func (w *world) menu() []desktop.MenuItem {
	return []desktop.MenuItem{
		{ID: "open-explorer", Label: "Open Explorer", Action: func() error {
			w.openExplorer()
			return nil
		}},
		{ID: "open-recycle", Label: "Open Recycle Bin", Action: func() error {
			w.openRecycle()
			return nil
		}},
		{ID: "open-mail", Label: "Open Mail", Action: func() error {
			w.openMail()
			return nil
		}},
		{ID: "select-all", Label: "Select All", Action: func() error {
			if w.desktop != nil {
				w.desktop.SelectAll()
			}
			return nil
		}},
	}
}

// fileRoots returns the desktop tree plus restored folders.
func (w *world) fileRoots() []catalog.Item {
	roots := w.catalog.Files()
	return append(roots, w.restored...)
}

func (w *world) onRestore(itemID, name string) {
	if it, ok := w.catalog.Find(itemID); ok {
		it.Locked = false
		w.restored = append(w.restored, it)
	}
	placed := true
	if w.desktop != nil {
		_, placed = w.desktop.Restore(desktop.RestoredItem{ID: itemID, Name: name})
	}
	LogRestore(itemID, name, placed)
	for _, win := range w.windows {
		if ex, ok := win.(*explorerWindow); ok {
			ex.nav.SetRoots(w.fileRoots())
		}
	}
	msg := name + " was restored to the desktop."
	if !placed {
		msg = name + " was restored, but the desktop is full."
	}
	w.notes.Notify(notify.KindSuccess, "Folder restored", msg)
}

// open pushes a window on top of the stack.
func (w *world) open(win window) {
	w.windows = append(w.windows, win)
	win.Resize(w.windowBodySize())
	w.sounds.Play(notify.SoundOpen)
}

// top returns the focused window.
func (w *world) top() (window, bool) {
	if len(w.windows) == 0 {
		return nil, false
	}
	return w.windows[len(w.windows)-1], true
}

func (w *world) closeTop() {
	if len(w.windows) == 0 {
		return
	}
	w.windows = w.windows[:len(w.windows)-1]
	w.sounds.Play(notify.SoundClose)
}

// raise moves window i to the top of the stack.
func (w *world) raise(i int) {
	if i < 0 || i >= len(w.windows)-1 {
		return
	}
	win := w.windows[i]
	w.windows = append(w.windows[:i], w.windows[i+1:]...)
	w.windows = append(w.windows, win)
}

func (w *world) openExplorer(opts ...explorer.Option) {
	w.open(newExplorerWindow(explorer.New(w.fileRoots(), opts...)))
}

func (w *world) openRecycle() {
	for i, win := range w.windows {
		if _, ok := win.(*recycleWindow); ok {
			w.raise(i)
			return
		}
	}
	w.open(newRecycleWindow(w.bin))
}

func (w *world) openMail() {
	for i, win := range w.windows {
		if _, ok := win.(*mailWindow); ok {
			w.raise(i)
			return
		}
	}
	w.open(newMailWindow(w.mailbox))
}

func (w *world) openReport(it catalog.Item, path string) {
	w.open(newReportWindow(it.Name, path, w.clock))
	w.pending = append(w.pending, commands.LoadReport(path, it.Name))
}

func (w *world) openChat(id string) {
	chat, ok := w.catalog.Chat(id)
	if !ok {
		w.fail("opening conversation", fmt.Errorf("%w: chat %s", catalog.ErrAssetNotFound, id))
		return
	}
	w.open(newChatWindow(chat))
}

// openTarget displays what an explorer or bin Open resolved to.
func (w *world) openTarget(t explorer.Target) {
	switch t.Kind {
	case explorer.TargetReport:
		w.openReport(t.Item, t.Ref)
	case explorer.TargetChat:
		w.openChat(t.Ref)
	}
}

// startRestore opens the puzzle briefing for a deleted item, or restores it
// at once when it has no puzzle.
func (w *world) startRestore(it catalog.Item) {
	if it.Puzzle == "" {
		if _, err := w.bin.BeginRestore(it.ID); err != nil {
			w.fail("restoring "+it.Name, err)
		}
		return
	}
	kind, err := puzzle.ParseKind(it.Puzzle)
	if err != nil {
		w.fail("restoring "+it.Name, err)
		return
	}
	brief, _ := w.catalog.Briefing(kind)
	w.modal = newPuzzleModal(it, kind, brief)
	w.sounds.Play(notify.SoundOpen)
}

// closeModal cancels the restore in progress, if any, and drops the modal.
func (w *world) closeModal() {
	if w.modal == nil {
		return
	}
	if w.modal.game != nil && !w.modal.game.Won() {
		if err := w.bin.CancelRestore(); err == nil {
			w.notes.Notify(notify.KindWarning, "Restore cancelled", w.modal.item.Name+" stays in the recycle bin.")
		}
	}
	w.modal = nil
	w.sounds.Play(notify.SoundClose)
}

// fail logs err and shows it as a toast titled after its category.
func (w *world) fail(context string, err error) {
	if err == nil {
		return
	}
	LogError(context, err)
	kind, title := notify.KindError, "Error"
	switch {
	case errors.Is(err, desktop.ErrIconDisabled):
		title = "Access restricted"
	case errors.Is(err, explorer.ErrLocked), errors.Is(err, recycle.ErrLocked):
		kind, title = notify.KindWarning, "Access denied"
	case errors.Is(err, recycle.ErrWrongPassword), errors.Is(err, session.ErrInvalidCredential):
		title = "Access denied"
	case errors.Is(err, explorer.ErrCannotOpen):
		kind, title = notify.KindWarning, "Cannot open file"
	case errors.Is(err, catalog.ErrAssetNotFound):
		title = "File not found"
	case errors.Is(err, puzzle.ErrIncompleteGuess):
		kind, title = notify.KindWarning, "Incomplete answer"
	}
	w.notes.Notify(kind, title, err.Error())
}

// advance moves the clock to the tick time. The first tick and long stalls
// advance by one configured tick.
func (w *world) advance(at time.Time) {
	step := w.cfg.Tick()
	if !w.lastTick.IsZero() {
		if d := at.Sub(w.lastTick); d > 0 && d < time.Second {
			step = d
		}
	}
	w.lastTick = at
	w.clock.Advance(step)
}

// drain returns the commands queued by actions.
func (w *world) drain() tea.Cmd {
	if len(w.pending) == 0 {
		return nil
	}
	cmds := w.pending
	w.pending = nil
	return tea.Batch(cmds...)
}

// close stops every timer.
func (w *world) close() {
	if w.modal != nil && w.modal.game != nil {
		w.modal.game.Close()
	}
	w.session.Close()
	w.notes.Close()
	w.clock.StopAll()
}

// soundPlayer returns the terminal bell or a mute player.
func soundPlayer(enabled bool, out io.Writer) notify.Player {
	if !enabled || out == nil {
		return notify.Mute{}
	}
	return notify.NewBell(out)
}
