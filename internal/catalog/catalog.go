// Package catalog provides the bundled mock data: the desktop file tree, the
// recycle bin, mail, chat transcripts, puzzle briefings and report texts.
//
// Everything is embedded in the binary and parsed once. A Catalog is
// read-only after Load; accessors return copies.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/murkoff/internal/puzzle"
)

//go:embed data/*.toml
var dataFS embed.FS

//go:embed reports/*.txt
var reportFS embed.FS

// Catalog errors.
var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrDuplicateID   = errors.New("duplicate item id")
)

// ItemType classifies a file-tree entry.
type ItemType string

const (
	TypeFile   ItemType = "file"
	TypeFolder ItemType = "folder"
	TypeImage  ItemType = "image"
)

// Item is one entry of the file tree or the recycle bin.
type Item struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Type     ItemType `toml:"type"`
	Content  string   `toml:"content,omitempty"` // report path or chat id
	CanOpen  bool     `toml:"can_open,omitempty"`
	Locked   bool     `toml:"locked,omitempty"`
	Password string   `toml:"password,omitempty"`
	Puzzle   string   `toml:"puzzle,omitempty"` // restore gate, recycle bin only
	Rounds   int      `toml:"rounds,omitempty"`
	Children []Item   `toml:"children,omitempty"`
}

// IsFolder reports whether the item holds children.
func (it Item) IsFolder() bool {
	return it.Type == TypeFolder
}

// Message is one mail.
type Message struct {
	ID             string `toml:"id"`
	From           string `toml:"from"`
	Subject        string `toml:"subject"`
	Preview        string `toml:"preview"`
	Body           string `toml:"body"`
	Date           string `toml:"date"`
	Read           bool   `toml:"read"`
	Flagged        bool   `toml:"flagged"`
	Classification string `toml:"classification"`
}

// Sender returns the display name part of From.
func (m Message) Sender() string {
	name, _, _ := strings.Cut(m.From, "<")
	return strings.TrimSpace(name)
}

// ChatLine is one bubble of a transcript.
type ChatLine struct {
	Text string `toml:"text"`
	Sent bool   `toml:"sent"`
	Time string `toml:"time"`
}

// Chat is a phone conversation shown for an image file.
type Chat struct {
	ID       string     `toml:"id"`
	Contact  string     `toml:"contact"`
	Date     string     `toml:"date"`
	Time     string     `toml:"time"`
	Messages []ChatLine `toml:"messages"`
}

// Briefing is the intro screen of a puzzle.
type Briefing struct {
	Kind        string   `toml:"kind"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Rules       []string `toml:"rules"`
	Clearance   string   `toml:"clearance"`
	Accent      string   `toml:"accent"`
}

type filesDoc struct {
	Items []Item `toml:"items"`
}

type mailDoc struct {
	Messages []Message `toml:"messages"`
}

type chatsDoc struct {
	Chats []Chat `toml:"chats"`
}

type puzzlesDoc struct {
	Briefings []Briefing `toml:"briefings"`
}

// Catalog is the loaded mock data.
type Catalog struct {
	files     []Item
	recycle   []Item
	mail      []Message
	chats     map[string]Chat
	briefings map[puzzle.Kind]Briefing
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(dataFS)
})

// Default returns the embedded catalog, parsed on first use.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Load parses a catalog from fsys, which must hold data/files.toml,
// data/recycle.toml, data/mail.toml, data/chats.toml and data/puzzles.toml.
func Load(fsys fs.FS) (*Catalog, error) {
	var files, recycle filesDoc
	var mail mailDoc
	var chats chatsDoc
	var briefings puzzlesDoc
	docs := []struct {
		name string
		into any
	}{
		{"files.toml", &files},
		{"recycle.toml", &recycle},
		{"mail.toml", &mail},
		{"chats.toml", &chats},
		{"puzzles.toml", &briefings},
	}
	for _, doc := range docs {
		data, err := fs.ReadFile(fsys, path.Join("data", doc.name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", doc.name, err)
		}
		if err := toml.Unmarshal(data, doc.into); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", doc.name, err)
		}
	}

	c := &Catalog{
		files:     files.Items,
		recycle:   recycle.Items,
		mail:      mail.Messages,
		chats:     make(map[string]Chat, len(chats.Chats)),
		briefings: make(map[puzzle.Kind]Briefing, len(briefings.Briefings)),
	}
	for _, ch := range chats.Chats {
		c.chats[ch.ID] = ch
	}
	for _, b := range briefings.Briefings {
		kind, err := puzzle.ParseKind(b.Kind)
		if err != nil {
			return nil, fmt.Errorf("briefing %q: %w", b.Title, err)
		}
		c.briefings[kind] = b
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	var walk func(items []Item) error
	walk = func(items []Item) error {
		for _, it := range items {
			if seen[it.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
			}
			seen[it.ID] = true
			if err := walk(it.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(c.files); err != nil {
		return err
	}
	if err := walk(c.recycle); err != nil {
		return err
	}
	for _, it := range c.recycle {
		if it.Puzzle == "" {
			continue
		}
		if _, err := puzzle.ParseKind(it.Puzzle); err != nil {
			return fmt.Errorf("recycle item %s: %w", it.ID, err)
		}
	}
	return nil
}

// Files returns the desktop file tree roots.
func (c *Catalog) Files() []Item {
	return cloneItems(c.files)
}

// Recycled returns the recycle bin contents.
func (c *Catalog) Recycled() []Item {
	return cloneItems(c.recycle)
}

// Find looks up an item anywhere in the file tree or the recycle bin.
func (c *Catalog) Find(id string) (Item, bool) {
	if it, ok := findItem(c.files, id); ok {
		return it, true
	}
	return findItem(c.recycle, id)
}

// Mail returns the inbox, newest first as bundled.
func (c *Catalog) Mail() []Message {
	return append([]Message(nil), c.mail...)
}

// Message returns the mail with the given id.
func (c *Catalog) Message(id string) (Message, bool) {
	for _, m := range c.mail {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// Chat returns the transcript with the given id.
func (c *Catalog) Chat(id string) (Chat, bool) {
	ch, ok := c.chats[id]
	if !ok {
		return Chat{}, false
	}
	ch.Messages = append([]ChatLine(nil), ch.Messages...)
	return ch, true
}

// Briefing returns the intro text of a puzzle kind.
func (c *Catalog) Briefing(kind puzzle.Kind) (Briefing, bool) {
	b, ok := c.briefings[kind]
	if !ok {
		return Briefing{}, false
	}
	b.Rules = append([]string(nil), b.Rules...)
	return b, true
}

// ReadReport returns the text of a bundled report, e.g. "reports/report-01.txt".
func ReadReport(name string) (string, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	data, err := reportFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return string(data), nil
}

func findItem(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return cloneItem(it), true
		}
		if found, ok := findItem(it.Children, id); ok {
			return found, true
		}
	}
	return Item{}, false
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it Item) Item {
	it.Children = cloneItems(it.Children)
	return it
}
