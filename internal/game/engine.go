// internal/game/engine.go
//
// Core game engine for a Tower of Hanoi session.
// Responsibilities:
//   - Own the named peg collection (unique names, never silently replaced).
//   - Create pegs empty or through an all-or-nothing initializer.
//   - Mediate every inter-peg transfer through the placement invariant.
//   - Track state for rendering via ordered read-only snapshots.
//
// Notes:
//   - Disks come from the peg package; the engine never touches peg internals.
//   - A transfer is place-then-remove: the destination accepts the disk before
//     the source gives it up, so a rejected placement leaves both pegs intact.
//   - All rejections are sentinel errors from types.go, wrapped with the names
//     involved.
package game

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/robalobadob/hanoi/internal/peg"
)

// Engine owns a collection of named pegs and validates moves between them.
// Not safe for concurrent use; the session loop is single-threaded.
type Engine[T cmp.Ordered] struct {
	pegs map[string]*peg.Peg[T]
}

// New constructs an engine with no pegs.
func New[T cmp.Ordered]() *Engine[T] {
	return &Engine[T]{pegs: make(map[string]*peg.Peg[T])}
}

// Has reports whether a peg exists under name.
func (e *Engine[T]) Has(name string) bool {
	_, ok := e.pegs[name]
	return ok
}

// Create inserts a new empty peg under name.
// Fails with ErrPegExists if the name is already taken; the existing peg is
// untouched.
func (e *Engine[T]) Create(name string) error {
	return e.CreateWith(name, nil)
}

// CreateWith inserts a new peg under name after running init against it.
// The peg is built locally and committed into the collection only if init
// succeeds; on failure the name stays unclaimed and no partial peg survives.
// A nil init creates an empty peg.
func (e *Engine[T]) CreateWith(name string, init func(*peg.Peg[T]) error) error {
	if e.Has(name) {
		return fmt.Errorf("create %q: %w", name, ErrPegExists)
	}
	p := peg.New[T]()
	if init != nil {
		if err := init(p); err != nil {
			return fmt.Errorf("init %q: %w", name, err)
		}
	}
	e.pegs[name] = p
	return nil
}

// Select returns the peg stored under name, or ErrPegNotFound.
func (e *Engine[T]) Select(name string) (*peg.Peg[T], error) {
	p, ok := e.pegs[name]
	if !ok {
		return nil, fmt.Errorf("select %q: %w", name, ErrPegNotFound)
	}
	return p, nil
}

// Move transfers the top disk of from onto to.
//
// Rules:
//   - from == to succeeds trivially and changes nothing.
//   - Both names must exist (ErrPegNotFound).
//   - The source must be non-empty (ErrEmptyPeg).
//   - The destination top must be strictly larger (ErrBlocked).
//
// On success the transfer is atomic from the caller's point of view: the
// destination Place happens first and cannot be followed by a failing step,
// since Remove on a known non-empty source always succeeds.
func (e *Engine[T]) Move(from, to string) error {
	if from == to {
		return nil
	}
	src, err := e.Select(from)
	if err != nil {
		return err
	}
	dst, err := e.Select(to)
	if err != nil {
		return err
	}
	top, ok := src.Top()
	if !ok {
		return fmt.Errorf("move %q -> %q: %w", from, to, ErrEmptyPeg)
	}
	if !dst.Place(top) {
		return fmt.Errorf("move %q -> %q: %w", from, to, ErrBlocked)
	}
	src.Remove()
	return nil
}

// Names returns all peg names in sorted order, for deterministic rendering.
func (e *Engine[T]) Names() []string {
	names := make([]string, 0, len(e.pegs))
	for name := range e.pegs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a sorted, read-only copy of every peg's contents.
func (e *Engine[T]) Snapshot() []PegView[T] {
	names := e.Names()
	out := make([]PegView[T], 0, len(names))
	for _, name := range names {
		out = append(out, PegView[T]{Name: name, Disks: e.pegs[name].Snapshot()})
	}
	return out
}

// Disks reports the total disk count across all pegs.
func (e *Engine[T]) Disks() int {
	n := 0
	for _, p := range e.pegs {
		n += p.Size()
	}
	return n
}
