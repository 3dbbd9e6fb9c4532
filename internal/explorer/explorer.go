// Package explorer implements folder navigation over a catalog tree.
package explorer

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/murkoff/internal/catalog"
)

// Explorer errors.
var (
	ErrLocked     = errors.New("folder is locked")
	ErrCannotOpen = errors.New("this file cannot be opened")
	ErrNotFound   = errors.New("item not found")
)

// DefaultRootName labels the top of the path.
const DefaultRootName = "This PC"

// TargetKind says what opening an item produced.
type TargetKind int

const (
	TargetFolder TargetKind = iota
	TargetReport
	TargetChat
)

// Target is the result of Open.
type Target struct {
	Kind TargetKind
	Item catalog.Item
	Ref  string // report path or chat id
}

// Explorer is a path stack over a list of root items.
type Explorer struct {
	rootName string
	roots    []catalog.Item
	stack    []catalog.Item
	initial  string
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithRootName sets the label of the root level.
func WithRootName(name string) Option {
	return func(e *Explorer) {
		e.rootName = name
	}
}

// WithInitialFolder opens the root folder with the given id on creation.
// Unknown ids leave the explorer at the root.
func WithInitialFolder(id string) Option {
	return func(e *Explorer) {
		e.initial = id
	}
}

// New creates an explorer over roots.
func New(roots []catalog.Item, opts ...Option) *Explorer {
	e := &Explorer{rootName: DefaultRootName, roots: roots}
	for _, opt := range opts {
		opt(e)
	}
	if e.initial != "" {
		if it, ok := find(e.roots, e.initial); ok && it.IsFolder() {
			e.stack = []catalog.Item{it}
		}
	}
	return e
}

// Items lists the current folder.
func (e *Explorer) Items() []catalog.Item {
	if len(e.stack) == 0 {
		return e.roots
	}
	return e.stack[len(e.stack)-1].Children
}

// Path returns the labels from the root to the current folder.
func (e *Explorer) Path() []string {
	out := []string{e.rootName}
	for _, it := range e.stack {
		out = append(out, it.Name)
	}
	return out
}

// Current returns the open folder, or false at the root.
func (e *Explorer) Current() (catalog.Item, bool) {
	if len(e.stack) == 0 {
		return catalog.Item{}, false
	}
	return e.stack[len(e.stack)-1], true
}

// AtRoot reports whether the root level is shown.
func (e *Explorer) AtRoot() bool {
	return len(e.stack) == 0
}

// Open opens an item of the current folder. Folders are entered; files
// resolve to what should display them.
func (e *Explorer) Open(id string) (Target, error) {
	it, ok := find(e.Items(), id)
	if !ok {
		return Target{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if it.IsFolder() {
		if it.Locked {
			return Target{}, fmt.Errorf("%s: %w", it.Name, ErrLocked)
		}
		e.stack = append(e.stack, it)
		return Target{Kind: TargetFolder, Item: it}, nil
	}
	if !it.CanOpen || it.Content == "" {
		return Target{}, fmt.Errorf("%s: %w", it.Name, ErrCannotOpen)
	}
	if it.Type == catalog.TypeImage {
		return Target{Kind: TargetChat, Item: it, Ref: it.Content}, nil
	}
	return Target{Kind: TargetReport, Item: it, Ref: it.Content}, nil
}

// Enter opens a folder of the current level even if it is locked. Callers
// check the password first.
func (e *Explorer) Enter(id string) error {
	it, ok := find(e.Items(), id)
	if !ok || !it.IsFolder() {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e.stack = append(e.stack, it)
	return nil
}

// Back leaves the current folder. It reports false at the root.
func (e *Explorer) Back() bool {
	if len(e.stack) == 0 {
		return false
	}
	e.stack = e.stack[:len(e.stack)-1]
	return true
}

// Home returns to the root.
func (e *Explorer) Home() {
	e.stack = nil
}

// SetRoots replaces the root list. The path is kept when its first folder is
// still a root, otherwise the explorer goes home.
func (e *Explorer) SetRoots(roots []catalog.Item) {
	e.roots = roots
	if len(e.stack) == 0 {
		return
	}
	if _, ok := find(roots, e.stack[0].ID); !ok {
		e.stack = nil
	}
}

func find(items []catalog.Item, id string) (catalog.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.Item{}, false
}
