package session

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hanoi/internal/game"
	"github.com/robalobadob/hanoi/internal/history"
	"github.com/robalobadob/hanoi/internal/peg"
)

// captureRenderer records render calls without touching a terminal.
type captureRenderer struct {
	frames int
	last   []game.PegView[Disk]
}

func (r *captureRenderer) Render(pegs []game.PegView[Disk], moves, undos int) error {
	r.frames++
	r.last = pegs
	return nil
}

// classic builds the default three-peg layout with a={3,2,1}.
func classic(t *testing.T) *game.Engine[Disk] {
	t.Helper()
	e := game.New[Disk]()
	require.NoError(t, e.CreateWith("a", func(p *peg.Peg[Disk]) error {
		for i := 3; i >= 1; i-- {
			if !p.Place(Disk(i)) {
				return fmt.Errorf("disk %d does not fit", i)
			}
		}
		return nil
	}))
	require.NoError(t, e.Create("b"))
	require.NoError(t, e.Create("c"))
	return e
}

func disksOn(t *testing.T, e *game.Engine[Disk], name string) []Disk {
	t.Helper()
	p, err := e.Select(name)
	require.NoError(t, err)
	return p.Snapshot()
}

// run feeds script to a fresh session over e and waits for it to finish.
func run(t *testing.T, e *game.Engine[Disk], script string) (*Session, *history.Memory, *captureRenderer) {
	t.Helper()
	rec := history.NewMemory()
	r := &captureRenderer{}
	s := New(e, strings.NewReader(script), r, rec)
	require.NoError(t, s.Run(context.Background()))
	return s, rec, r
}

func TestScenarioWithUndo(t *testing.T) {
	e := classic(t)
	s, rec, _ := run(t, e, "a,c\na,b\nc,b\n/undo\n/quit\n")

	assert.Equal(t, []Disk{3}, disksOn(t, e, "a"))
	assert.Equal(t, []Disk{2}, disksOn(t, e, "b"))
	assert.Equal(t, []Disk{1}, disksOn(t, e, "c"))
	assert.Equal(t, 3, s.Moves())
	assert.Equal(t, 1, s.Undos())

	entries := rec.Entries()
	require.Len(t, entries, 4)
	last := entries[3]
	assert.Equal(t, 4, last.Seq)
	assert.Equal(t, "b", last.From)
	assert.Equal(t, "c", last.To)
	assert.True(t, last.Undo)
	assert.False(t, entries[2].Undo)
}

func TestUndoBeforeAnyMove(t *testing.T) {
	e := classic(t)
	s, rec, _ := run(t, e, "/undo\n/quit\n")

	assert.Equal(t, []Disk{3, 2, 1}, disksOn(t, e, "a"))
	assert.Zero(t, s.Undos())
	assert.Empty(t, rec.Entries())
}

func TestUndoToggles(t *testing.T) {
	e := classic(t)
	s, _, _ := run(t, e, "a,b\n/undo\n/undo\n/quit\n")

	// Second undo reverses the first: disk 1 ends back on b.
	assert.Equal(t, []Disk{3, 2}, disksOn(t, e, "a"))
	assert.Equal(t, []Disk{1}, disksOn(t, e, "b"))
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, 2, s.Undos())
}

func TestRejectedMoveKeepsUndoRecord(t *testing.T) {
	e := classic(t)
	s, _, _ := run(t, e, "a,c\nb,c\n/undo\n/quit\n")

	// b,c fails (b is empty) and must not disturb the record,
	// so the undo reverses a,c.
	assert.Equal(t, []Disk{3, 2, 1}, disksOn(t, e, "a"))
	assert.Empty(t, disksOn(t, e, "c"))
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, 1, s.Undos())
}

func TestUnknownPegIgnored(t *testing.T) {
	e := classic(t)
	s, rec, _ := run(t, e, "a,z\nz,a\n/quit\n")

	assert.Equal(t, []Disk{3, 2, 1}, disksOn(t, e, "a"))
	assert.Zero(t, s.Moves())
	assert.Empty(t, rec.Entries())
}

func TestUnrecognizedLinesIgnored(t *testing.T) {
	e := classic(t)
	s, _, r := run(t, e, "hello\n\nnot a command\n/quit\n")

	assert.Equal(t, []Disk{3, 2, 1}, disksOn(t, e, "a"))
	assert.Zero(t, s.Moves())
	// One render per loop iteration, nothing skipped.
	assert.Equal(t, 4, r.frames)
}

func TestSelfMoveSucceeds(t *testing.T) {
	e := classic(t)
	s, _, _ := run(t, e, "a,a\n/quit\n")

	assert.Equal(t, []Disk{3, 2, 1}, disksOn(t, e, "a"))
	assert.Equal(t, 1, s.Moves())
}

func TestEOFEndsSessionCleanly(t *testing.T) {
	t.Run("trailing newline", func(t *testing.T) {
		e := classic(t)
		s, _, _ := run(t, e, "a,c\n")
		assert.Equal(t, []Disk{1}, disksOn(t, e, "c"))
		assert.Equal(t, 1, s.Moves())
	})

	t.Run("partial final line", func(t *testing.T) {
		e := classic(t)
		s, _, _ := run(t, e, "a,c")
		assert.Equal(t, []Disk{1}, disksOn(t, e, "c"))
		assert.Equal(t, 1, s.Moves())
	})
}

func TestUndoRejectedWhenReverseIsIllegal(t *testing.T) {
	// Adversarial setup: after a,b succeeds, a transfer applied behind the
	// session's back makes the reverse of the recorded move illegal.
	e := game.New[Disk]()
	require.NoError(t, e.CreateWith("a", func(p *peg.Peg[Disk]) error {
		p.Place(4)
		return nil
	}))
	require.NoError(t, e.CreateWith("b", func(p *peg.Peg[Disk]) error {
		p.Place(5)
		return nil
	}))
	require.NoError(t, e.CreateWith("c", func(p *peg.Peg[Disk]) error {
		p.Place(1)
		return nil
	}))

	rec := history.NewMemory()
	s := New(e, strings.NewReader(""), &captureRenderer{}, rec)
	ctx := context.Background()

	require.True(t, s.apply(ctx, "a", "b", false))
	require.NoError(t, e.Move("c", "a")) // a's top is now 1

	// Reverse of (a,b) would drop 4 onto 1: rejected, nothing changes.
	s.undo(ctx)
	assert.Equal(t, []Disk{5, 4}, disksOn(t, e, "b"))
	assert.Equal(t, []Disk{1}, disksOn(t, e, "a"))
	assert.Zero(t, s.Undos())

	// The record is untouched, so a later undo attempt targets the same move.
	s.undo(ctx)
	assert.Equal(t, []Disk{5, 4}, disksOn(t, e, "b"))
	require.Len(t, rec.Entries(), 1)
}
