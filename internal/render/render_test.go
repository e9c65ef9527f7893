package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hanoi/internal/game"
)

func TestRenderShowsEveryPeg(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	err := r.Render([]game.PegView[uint]{
		{Name: "a", Disks: []uint{3, 2, 1}},
		{Name: "b", Disks: nil},
		{Name: "c", Disks: []uint{9}},
	}, 2, 1)
	require.NoError(t, err)

	out := buf.String()
	// Screen clear precedes the frame.
	assert.Contains(t, out, "\x1b[2J")
	// One line per peg, disks bottom-to-top. A buffer gets no color codes,
	// so contents are directly visible.
	assert.Contains(t, out, "a # 3 2 1")
	assert.Contains(t, out, "b #\n")
	assert.Contains(t, out, "c # 9")
	assert.Contains(t, out, "2 moved")
	assert.Contains(t, out, "1 undone")
}

func TestRenderEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.Render(nil, 0, 0))
	assert.Contains(t, buf.String(), "0 moved")
}
