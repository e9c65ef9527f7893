// internal/peg/peg.go
//
// Invariant-enforcing stack for disk towers.
// Responsibilities:
//   - Hold an ordered sequence of disks, bottom-to-top, strictly descending.
//   - Gate every insertion through the placement rule (empty, or top > disk).
//   - Expose read-only inspection (top, size, snapshot) for callers/rendering.
//
// Notes:
//   - Generic over any totally-ordered disk type; the session uses uint.
//   - There is no way to add a disk that violates the ordering: Place is the
//     single mutation path that grows a peg.
//   - Top and Remove report emptiness through their second return value
//     instead of panicking, so callers always get a checkable failure.
package peg

import (
	"cmp"
	"fmt"
)

// Peg is a stack of disks whose sizes strictly decrease from bottom to top.
// The zero value is not usable; construct with New or FromSlice.
type Peg[T cmp.Ordered] struct {
	disks []T // bottom-to-top
}

// New constructs an empty peg.
func New[T cmp.Ordered]() *Peg[T] {
	return &Peg[T]{disks: []T{}}
}

// FromSlice constructs a peg from a bottom-to-top disk sequence.
// Construction is all-or-nothing: if any disk would violate the strict
// descent, no peg is returned.
func FromSlice[T cmp.Ordered](bottomToTop []T) (*Peg[T], error) {
	p := New[T]()
	for _, d := range bottomToTop {
		if !p.Place(d) {
			top, _ := p.Top()
			return nil, fmt.Errorf("disk %v does not fit on top of %v", d, top)
		}
	}
	return p, nil
}

// Top reports the current topmost disk. ok is false on an empty peg.
func (p *Peg[T]) Top() (top T, ok bool) {
	if len(p.disks) == 0 {
		return top, false
	}
	return p.disks[len(p.disks)-1], true
}

// IsEmpty reports whether the peg holds no disks.
func (p *Peg[T]) IsEmpty() bool { return len(p.disks) == 0 }

// Size reports the number of disks on the peg.
func (p *Peg[T]) Size() int { return len(p.disks) }

// CanPlace reports whether disk may legally become the new top.
// True iff the peg is empty or the current top is strictly larger.
// Pure predicate, no side effect.
func (p *Peg[T]) CanPlace(disk T) bool {
	top, ok := p.Top()
	return !ok || top > disk
}

// Place appends disk as the new top if CanPlace allows it.
// Returns false and leaves the peg unchanged otherwise.
func (p *Peg[T]) Place(disk T) bool {
	if !p.CanPlace(disk) {
		return false
	}
	p.disks = append(p.disks, disk)
	return true
}

// Remove pops and returns the current top disk. ok is false on an empty peg,
// in which case the peg is unchanged.
func (p *Peg[T]) Remove() (top T, ok bool) {
	n := len(p.disks)
	if n == 0 {
		return top, false
	}
	top = p.disks[n-1]
	p.disks = p.disks[:n-1]
	return top, true
}

// Snapshot returns a bottom-to-top copy of the peg's contents.
// Mutating the returned slice does not affect the peg.
func (p *Peg[T]) Snapshot() []T {
	out := make([]T, len(p.disks))
	copy(out, p.disks)
	return out
}
