package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/murkoff/internal/notify"
	"github.com/javiermolinar/murkoff/internal/tui/commands"
)

// runCmd executes cmd and flattens batches. Timed commands must not be
// passed in.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// sendAll delivers msg and every message its command produces.
func sendAll(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for _, out := range runCmd(cmd) {
		m = send(t, m, out)
	}
	return m
}

func TestExplorerWindow_BrowseAndSealedFile(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("e"))
	ex := m.world.windows[0].(*explorerWindow)

	m = send(t, m, key(tea.KeyEnter))
	cur, ok := ex.nav.Current()
	if !ok || cur.ID != "research-01" {
		t.Fatalf("current folder = %+v, want research-01", cur)
	}
	if !strings.Contains(plainView(m), "Research_Alpha") {
		t.Errorf("path line missing from view")
	}

	m = send(t, m, key(tea.KeyEnter))
	if len(m.world.windows) != 1 {
		t.Errorf("sealed file opened a window")
	}
	if !hasToast(m, notify.KindWarning, "Cannot open file") {
		t.Errorf("toasts = %v, want Cannot open file", toastTitles(m))
	}

	m = send(t, m, key(tea.KeyBackspace))
	if !ex.nav.AtRoot() {
		t.Errorf("backspace did not return to the root")
	}
}

func TestRecycleWindow_ReportDecryptsThenShows(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("r"))
	m = send(t, m, key(tea.KeyDown))
	m = send(t, m, key(tea.KeyEnter))
	if m.world.bin.AtRoot() {
		t.Fatalf("enter did not open the folder")
	}

	m = sendAll(t, m, key(tea.KeyEnter))
	rep, ok := m.world.windows[len(m.world.windows)-1].(*reportWindow)
	if !ok {
		t.Fatalf("top window = %T, want *reportWindow", m.world.windows[len(m.world.windows)-1])
	}
	if !rep.loaded {
		t.Fatalf("report not loaded")
	}
	if got, want := rep.Title(), "Report N°001 · GP-TWO_Report_001.pdf"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if !rep.decrypting() {
		t.Fatalf("report skipped the preamble")
	}

	m.world.clock.Advance(3 * decryptLineGap)
	if !strings.Contains(plainView(m), "MURKOFF_SYS") {
		t.Errorf("preamble not shown:\n%s", plainView(m))
	}

	m.world.clock.Advance(time.Duration(len(rep.decrypt)) * decryptLineGap)
	if rep.decrypting() {
		t.Fatalf("preamble still running")
	}
	view := plainView(m)
	if !strings.Contains(view, "REPORT N°001") || !strings.Contains(view, "STUDY OBJECT") {
		t.Errorf("report body not shown:\n%s", view)
	}
}

func TestReportWindow_KeySkipsPreamble(t *testing.T) {
	m := newDesktopModel(t)
	rep := newReportWindow("notes.txt", "reports/report-02.txt", m.world.clock)
	m.world.open(rep)
	m = sendAll(t, m, commands.LoadReport(rep.path, rep.name)())

	if !rep.decrypting() {
		t.Fatalf("preamble not running")
	}
	m = send(t, m, runes("j"))
	if rep.decrypting() {
		t.Errorf("key did not skip the preamble")
	}
	if len(m.world.windows) != 1 {
		t.Errorf("skip closed the window")
	}
}

func TestReportWindow_LoadError(t *testing.T) {
	m := newDesktopModel(t)
	rep := newReportWindow("missing.pdf", "reports/missing.txt", m.world.clock)
	m.world.open(rep)

	m = send(t, m, commands.ErrMsg{Context: "opening missing.pdf", Err: errors.New("file does not exist")})
	if rep.err == nil {
		t.Fatalf("report window did not record the error")
	}
	if !strings.Contains(plainView(m), "[ERROR]") {
		t.Errorf("error not rendered")
	}
	if !hasToast(m, notify.KindError, "Error") {
		t.Errorf("toasts = %v, want Error", toastTitles(m))
	}
}

func TestRecycleWindow_ChatOpens(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("r"))
	m = send(t, m, key(tea.KeyEnter))
	m = send(t, m, key(tea.KeyEnter))

	chat, ok := m.world.windows[len(m.world.windows)-1].(*chatWindow)
	if !ok {
		t.Fatalf("top window = %T, want *chatWindow", m.world.windows[len(m.world.windows)-1])
	}
	if chat.chat.Contact == "" || !strings.Contains(plainView(m), chat.chat.Contact) {
		t.Errorf("chat contact not shown")
	}
}

func TestRecycleWindow_LockedFolderNeedsPassword(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("r"))
	rw := m.world.windows[0].(*recycleWindow)
	m = send(t, m, key(tea.KeyDown))
	m = send(t, m, key(tea.KeyDown))
	m = send(t, m, key(tea.KeyEnter))
	if rw.unlocking != "recycle-03" {
		t.Fatalf("unlocking = %q, want recycle-03", rw.unlocking)
	}

	m = typeText(t, m, "0000")
	m = send(t, m, key(tea.KeyEnter))
	if !hasToast(m, notify.KindError, "Access denied") {
		t.Errorf("toasts = %v, want Access denied", toastTitles(m))
	}
	if rw.unlocking == "" {
		t.Fatalf("wrong password left the prompt")
	}

	m = typeText(t, m, "123456789")
	m = send(t, m, key(tea.KeyEnter))
	if rw.unlocking != "" {
		t.Errorf("prompt still open after the right password")
	}
	if !m.world.bin.IsUnlocked("recycle-03") || m.world.bin.AtRoot() {
		t.Errorf("folder not unlocked and entered")
	}
	if !hasToast(m, notify.KindSuccess, "Access granted") {
		t.Errorf("toasts = %v, want Access granted", toastTitles(m))
	}
}

func TestRecycleWindow_PasswordEscCancels(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("r"))
	rw := m.world.windows[0].(*recycleWindow)
	m = send(t, m, key(tea.KeyDown))
	m = send(t, m, key(tea.KeyDown))
	m = send(t, m, runes("r"))
	if rw.unlocking == "" {
		t.Fatalf("restoring a locked folder did not ask for the password")
	}
	m = send(t, m, key(tea.KeyEsc))
	if rw.unlocking != "" {
		t.Errorf("esc left the prompt open")
	}
	if len(m.world.windows) != 1 {
		t.Errorf("esc in the prompt closed the window")
	}
}

func TestMailWindow_ReadSearchFlag(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("m"))
	mw := m.world.windows[0].(*mailWindow)
	unread := m.world.mailbox.Unread("")
	if got := mw.Title(); !strings.Contains(got, "unread") {
		t.Errorf("Title() = %q", got)
	}

	m = send(t, m, key(tea.KeyEnter))
	if mw.reading == nil {
		t.Fatalf("enter did not open the message")
	}
	if got := m.world.mailbox.Unread(""); got != unread-1 {
		t.Errorf("unread = %d, want %d", got, unread-1)
	}
	if !strings.Contains(plainView(m), "From: "+mw.reading.From) {
		t.Errorf("message header not shown")
	}

	m = send(t, m, runes("f"))
	if !mw.reading.Flagged {
		t.Errorf("f did not flag the open message")
	}
	m = send(t, m, key(tea.KeyBackspace))
	if mw.reading != nil {
		t.Fatalf("backspace did not return to the inbox")
	}

	m = send(t, m, runes("/"))
	m = typeText(t, m, "bertram")
	m = send(t, m, key(tea.KeyEnter))
	got, want := len(mw.messages()), len(m.world.mailbox.Messages("bertram"))
	if want == 0 || got != want {
		t.Errorf("filtered messages = %d, want %d", got, want)
	}
	for _, msg := range mw.messages() {
		text := strings.ToLower(msg.From + msg.Subject + msg.Preview)
		if !strings.Contains(text, "bertram") {
			t.Errorf("message %s does not match the query", msg.ID)
		}
	}
}

func TestWindowTitlesInTaskbar(t *testing.T) {
	m := newDesktopModel(t)
	m = send(t, m, runes("e"))
	m = send(t, m, runes("m"))

	lines := strings.Split(plainView(m), "\n")
	bar := lines[len(lines)-1]
	for _, want := range []string{"Start", "File Explorer", "Mail (", "09:41"} {
		if !strings.Contains(bar, want) {
			t.Errorf("taskbar %q missing %q", bar, want)
		}
	}
}
