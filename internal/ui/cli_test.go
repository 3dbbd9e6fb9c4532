package ui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/config"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	a := NewApp(config.Default(), cat)
	a.configPath = filepath.Join(t.TempDir(), "config.toml")
	a.runTUI = func(*config.Config, bool) error {
		t.Fatalf("TUI started by a subcommand")
		return nil
	}
	return a
}

func execute(t *testing.T, a *App, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a.root.SetArgs(args)
	a.root.SetOut(&out)
	a.root.SetErr(&out)
	a.root.SetIn(strings.NewReader(stdin))
	err := a.Execute()
	return out.String(), err
}

func TestCommandsOutput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "version",
			args: []string{"version"},
			want: []string{"murkoff dev (commit: none)"},
		},
		{
			name:    "ls",
			args:    []string{"ls"},
			want:    []string{"NAME", "research-01", "Research_Alpha", "doc-01"},
			notWant: []string{"ex-toxique"},
		},
		{
			name: "ls bin",
			args: []string{"ls", "--bin"},
			want: []string{"PUZZLE", "ex-toxique", "sequence", "translation", "dossier test", "locked"},
		},
		{
			name: "inbox",
			args: []string{"mail"},
			want: []string{"Inbox", "(4 unread)", "HR Department", "Dr. Harry Bertram"},
		},
		{
			name:    "inbox search",
			args:    []string{"mail", "--search", "bertram"},
			want:    []string{"Dr. Harry Bertram"},
			notWant: []string{"HR Department"},
		},
		{
			name:    "message",
			args:    []string{"mail", "1"},
			want:    []string{"From: HR Department <hr@murkoff-corp.com>", "Dear colleagues,", "MURKOFF Corporation"},
			notWant: []string{"Inbox"},
		},
		{
			name: "report",
			args: []string{"report", "report-01"},
			want: []string{"REPORT N°001", "STUDY OBJECT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, newTestApp(t), "", tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error = %v", tt.args, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, bad := range tt.notWant {
				if strings.Contains(out, bad) {
					t.Errorf("output unexpectedly contains %q", bad)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown message", args: []string{"mail", "99"}, wantErr: "asset not found"},
		{name: "unknown report", args: []string{"report", "report-99"}, wantErr: "asset not found"},
		{name: "folder is not a report", args: []string{"report", "research-01"}, wantErr: "is not a report"},
		{name: "report needs an id", args: []string{"report"}, wantErr: "accepts 1 arg"},
		{name: "ls takes no args", args: []string{"ls", "x"}, wantErr: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, newTestApp(t), "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Execute(%v) error = %v, want %q", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestReportCopy(t *testing.T) {
	var got string
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	writeClipboard = func(text string) error {
		got = text
		return nil
	}

	out, err := execute(t, newTestApp(t), "", "report", "report-01", "--copy")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, "REPORT N°001") {
		t.Errorf("clipboard = %q, want the report text", got)
	}
	if strings.Contains(out, "STUDY OBJECT") {
		t.Errorf("--copy also printed the report")
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	if _, err := execute(t, newTestApp(t), "", "report", "report-01", "--copy"); err == nil {
		t.Errorf("expected clipboard failure to be reported")
	}
}

func TestRootRunsTUI(t *testing.T) {
	a := newTestApp(t)
	var gotDebug bool
	calls := 0
	a.runTUI = func(cfg *config.Config, debug bool) error {
		calls++
		gotDebug = debug
		if cfg != a.config {
			t.Errorf("TUI got a different config")
		}
		return nil
	}

	if _, err := execute(t, a, "", "--debug"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if calls != 1 || !gotDebug {
		t.Errorf("runTUI calls = %d, debug = %t", calls, gotDebug)
	}
}

func TestConfigCreatesAndEdits(t *testing.T) {
	a := newTestApp(t)

	out, err := execute(t, a, "n\n", "config")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if !strings.Contains(out, "No config file found") || !strings.Contains(out, "password         = ****") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(a.configPath); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// password, skip boot, cols, rows, lives, three round counts, audio, theme
	input := strings.Join([]string{"y", "secret", "true", "", "", "5", "", "", "2", "false", "", ""}, "\n")
	out, err = execute(t, a, input, "config")
	if err != nil {
		t.Fatalf("config edit error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "Configuration saved!") {
		t.Errorf("missing save confirmation:\n%s", out)
	}

	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Session.Password != "secret" || !cfg.Session.SkipBoot {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Puzzle.Lives != 5 || cfg.Puzzle.CipherRounds != 2 || cfg.Puzzle.SequenceRounds != 4 {
		t.Errorf("puzzle = %+v", cfg.Puzzle)
	}
	if cfg.Audio.Enabled {
		t.Errorf("audio still enabled")
	}
	if cfg.Desktop.Cols != 15 || cfg.UI.Theme != config.Default().UI.Theme {
		t.Errorf("defaults not kept: cols %d theme %q", cfg.Desktop.Cols, cfg.UI.Theme)
	}
}
