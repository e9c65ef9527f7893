// internal/game/types.go
//
// Shared type and error definitions for the Hanoi game engine.
// Defines:
//   - PegView: read-only rendering snapshot of one named peg.
//   - Sentinel errors for every way an engine operation can be rejected.

package game

import "errors"

var (
	// ErrPegExists is returned when creating a peg under a taken name.
	ErrPegExists = errors.New("peg already exists")
	// ErrPegNotFound is returned when an operation names an unknown peg.
	ErrPegNotFound = errors.New("peg not found")
	// ErrEmptyPeg is returned when a move names an empty source peg.
	ErrEmptyPeg = errors.New("nothing to move")
	// ErrBlocked is returned when the destination top is not strictly larger
	// than the disk being moved.
	ErrBlocked = errors.New("destination top is not larger")
)

// PegView is a point-in-time copy of one peg, safe to hold across later
// engine mutations. Disks are ordered bottom-to-top.
type PegView[T any] struct {
	Name  string
	Disks []T
}
