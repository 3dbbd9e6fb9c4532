package explorer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/murkoff/internal/catalog"
)

func tree() []catalog.Item {
	return []catalog.Item{
		{ID: "research-01", Name: "Research_Alpha", Type: catalog.TypeFolder, Children: []catalog.Item{
			{ID: "doc-01", Name: "Analysis_Report.pdf", Type: catalog.TypeFile},
			{ID: "sub", Name: "Sub", Type: catalog.TypeFolder, Children: []catalog.Item{
				{ID: "doc-02", Name: "Deep.txt", Type: catalog.TypeFile},
			}},
		}},
		{ID: "recycle-02", Name: "image +18", Type: catalog.TypeFolder, Children: []catalog.Item{
			{ID: "report-01", Name: "GP-TWO_Report_001.pdf", Type: catalog.TypeFile, CanOpen: true, Content: "reports/report-01.txt"},
			{ID: "chat-01", Name: "Conversation_01.png", Type: catalog.TypeImage, CanOpen: true, Content: "chat-01"},
		}},
		{ID: "vault", Name: "Vault", Type: catalog.TypeFolder, Locked: true},
	}
}

func TestNavigation(t *testing.T) {
	e := New(tree())
	if !e.AtRoot() || len(e.Items()) != 3 {
		t.Fatalf("expected root listing")
	}
	if _, err := e.Open("research-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Open("sub"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"This PC", "Research_Alpha", "Sub"}, e.Path()); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	if !e.Back() || len(e.Path()) != 2 {
		t.Fatalf("expected back to pop one level")
	}
	e.Home()
	if e.Back() {
		t.Fatalf("expected back at root to report false")
	}
}

func TestOpen_Files(t *testing.T) {
	e := New(tree(), WithInitialFolder("recycle-02"))
	if cur, ok := e.Current(); !ok || cur.ID != "recycle-02" {
		t.Fatalf("expected initial folder")
	}

	tests := []struct {
		id       string
		wantKind TargetKind
		wantRef  string
	}{
		{"report-01", TargetReport, "reports/report-01.txt"},
		{"chat-01", TargetChat, "chat-01"},
	}
	for _, tt := range tests {
		got, err := e.Open(tt.id)
		if err != nil {
			t.Fatalf("Open(%s): %v", tt.id, err)
		}
		if got.Kind != tt.wantKind || got.Ref != tt.wantRef {
			t.Fatalf("Open(%s) = %+v", tt.id, got)
		}
	}
}

func TestOpen_Errors(t *testing.T) {
	e := New(tree())
	if _, err := e.Open("vault"); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, err := e.Open("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := e.Open("research-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Open("doc-01"); !errors.Is(err, ErrCannotOpen) {
		t.Fatalf("expected ErrCannotOpen, got %v", err)
	}
}

func TestEnterLocked(t *testing.T) {
	e := New(tree())
	if err := e.Enter("vault"); err != nil {
		t.Fatal(err)
	}
	if cur, _ := e.Current(); cur.ID != "vault" {
		t.Fatalf("expected to be inside the vault")
	}
}

func TestWithInitialFolder_Unknown(t *testing.T) {
	e := New(tree(), WithInitialFolder("restored-404"), WithRootName("Desktop"))
	if !e.AtRoot() {
		t.Fatalf("expected unknown initial folder to stay at root")
	}
	if e.Path()[0] != "Desktop" {
		t.Fatalf("expected custom root name")
	}
}

func TestSetRoots(t *testing.T) {
	e := New(tree(), WithInitialFolder("recycle-02"))
	e.SetRoots(tree())
	if e.AtRoot() {
		t.Fatalf("expected path kept while folder still exists")
	}
	e.SetRoots(tree()[:1])
	if !e.AtRoot() {
		t.Fatalf("expected explorer to go home when its folder disappears")
	}
}
