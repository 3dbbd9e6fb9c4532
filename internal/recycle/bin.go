// Package recycle implements the recycle bin: browsing deleted folders,
// unlocking protected ones and restoring items once their puzzle is beaten.
package recycle

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/explorer"
	"github.com/javiermolinar/murkoff/internal/puzzle"
)

// Recycle bin errors.
var (
	ErrLocked          = errors.New("folder is password protected")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrNotFound        = errors.New("item is not in the recycle bin")
	ErrRestoreActive   = errors.New("a restore is already in progress")
	ErrNoRestoreActive = errors.New("no restore in progress")
)

// RootName labels the top of the bin path.
const RootName = "Recycle Bin"

// RestoreFunc receives a restored item.
type RestoreFunc func(itemID, itemName string)

// Restore is a restore waiting on its puzzle.
type Restore struct {
	Item catalog.Item
	Game puzzle.Game
}

// Bin is the recycle bin state.
type Bin struct {
	items     []catalog.Item
	nav       *explorer.Explorer
	unlocked  map[string]bool
	base      puzzle.Options
	rounds    map[puzzle.Kind]int
	onRestore RestoreFunc
	active    *Restore
}

// Option configures a Bin.
type Option func(*Bin)

// WithPuzzleOptions sets the clock, randomness, sounds and lives of the
// restore puzzles. OnSuccess and RoundsToWin are managed by the bin.
func WithPuzzleOptions(opts puzzle.Options) Option {
	return func(b *Bin) {
		b.base = opts
	}
}

// WithRounds overrides the rounds to win per puzzle kind.
func WithRounds(rounds map[puzzle.Kind]int) Option {
	return func(b *Bin) {
		b.rounds = rounds
	}
}

// WithRestoreCallback is called once per restored item.
func WithRestoreCallback(fn RestoreFunc) Option {
	return func(b *Bin) {
		b.onRestore = fn
	}
}

// New creates a bin holding items.
func New(items []catalog.Item, opts ...Option) *Bin {
	b := &Bin{
		items:    append([]catalog.Item(nil), items...),
		unlocked: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.nav = explorer.New(b.items, explorer.WithRootName(RootName))
	return b
}

// Items lists the current folder of the bin.
func (b *Bin) Items() []catalog.Item {
	return b.nav.Items()
}

// Deleted returns the top-level deleted items still in the bin.
func (b *Bin) Deleted() []catalog.Item {
	return append([]catalog.Item(nil), b.items...)
}

// Path returns the labels from the bin root to the current folder.
func (b *Bin) Path() []string {
	return b.nav.Path()
}

// AtRoot reports whether the bin root is shown.
func (b *Bin) AtRoot() bool {
	return b.nav.AtRoot()
}

// Back leaves the current folder.
func (b *Bin) Back() bool {
	return b.nav.Back()
}

// Open opens an item of the current folder. Locked folders that were not
// unlocked return ErrLocked.
func (b *Bin) Open(id string) (explorer.Target, error) {
	if it, ok := b.root(id); ok && b.nav.AtRoot() && it.Locked {
		if !b.unlocked[id] {
			return explorer.Target{}, fmt.Errorf("%s: %w", it.Name, ErrLocked)
		}
		if err := b.nav.Enter(id); err != nil {
			return explorer.Target{}, err
		}
		return explorer.Target{Kind: explorer.TargetFolder, Item: it}, nil
	}
	return b.nav.Open(id)
}

// Unlock checks the password of a locked folder and enters it.
func (b *Bin) Unlock(id, password string) error {
	it, ok := b.root(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if it.Locked && password != it.Password {
		return ErrWrongPassword
	}
	b.unlocked[id] = true
	b.nav.Home()
	return b.nav.Enter(id)
}

// IsUnlocked reports whether a locked folder was opened with its password.
func (b *Bin) IsUnlocked(id string) bool {
	return b.unlocked[id]
}

// BeginRestore starts the puzzle gating the restore of a top-level item.
// Locked folders must be unlocked first. Items without a puzzle restore
// immediately and the returned game is nil.
func (b *Bin) BeginRestore(id string) (puzzle.Game, error) {
	if b.active != nil {
		return nil, ErrRestoreActive
	}
	it, ok := b.root(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if it.Locked && !b.unlocked[id] {
		return nil, fmt.Errorf("%s: %w", it.Name, ErrLocked)
	}
	if it.Puzzle == "" {
		b.complete(it)
		return nil, nil
	}

	kind, err := puzzle.ParseKind(it.Puzzle)
	if err != nil {
		return nil, fmt.Errorf("restoring %s: %w", it.Name, err)
	}
	opts := b.base
	opts.RoundsToWin = it.Rounds
	if opts.RoundsToWin == 0 {
		opts.RoundsToWin = b.rounds[kind]
	}
	opts.OnSuccess = func() {
		b.complete(it)
	}
	game, err := puzzle.New(kind, opts)
	if err != nil {
		return nil, fmt.Errorf("restoring %s: %w", it.Name, err)
	}
	b.active = &Restore{Item: it, Game: game}
	return game, nil
}

// Active returns the restore in progress.
func (b *Bin) Active() (Restore, bool) {
	if b.active == nil {
		return Restore{}, false
	}
	return *b.active, true
}

// CancelRestore closes the puzzle of the restore in progress and cancels its
// timers. The item stays in the bin.
func (b *Bin) CancelRestore() error {
	if b.active == nil {
		return ErrNoRestoreActive
	}
	b.active.Game.Close()
	b.active = nil
	return nil
}

func (b *Bin) complete(it catalog.Item) {
	b.active = nil
	idx := -1
	for i, cur := range b.items {
		if cur.ID == it.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	b.items = append(b.items[:idx:idx], b.items[idx+1:]...)
	delete(b.unlocked, it.ID)
	b.nav.SetRoots(b.items)
	if b.onRestore != nil {
		b.onRestore(it.ID, it.Name)
	}
}

func (b *Bin) root(id string) (catalog.Item, bool) {
	for _, it := range b.items {
		if it.ID == id {
			return it, true
		}
	}
	return catalog.Item{}, false
}
