// internal/render/render.go
//
// Terminal rendering for the session loop.
// Responsibilities:
//   - Clear the screen and redraw every peg, one line per peg, disks
//     bottom-to-top.
//   - Style disk cells per size; degrade to plain text on dumb terminals
//     (the lipgloss renderer detects the profile from the writer).
//   - Show the transfer counters and a short help line.
//
// The exact visual format is not a compatibility surface; tests only assert
// that every peg appears with its full ordered contents.

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/hanoi/internal/game"
)

// Subtle gradient, small disks at the warm end.
var palette = []string{"#fb7185", "#f472b6", "#e879f9", "#c084fc", "#a78bfa", "#818cf8"}

// Renderer draws the full peg state onto one terminal writer.
type Renderer struct {
	w     io.Writer
	out   *termenv.Output
	name  lipgloss.Style
	help  lipgloss.Style
	disks []lipgloss.Style
}

// New constructs a renderer for w. Styling follows w: a real terminal gets
// colors, anything else gets plain text.
func New(w io.Writer) *Renderer {
	ren := lipgloss.NewRenderer(w)
	r := &Renderer{
		w:    w,
		out:  termenv.NewOutput(w),
		name: ren.NewStyle().Bold(true),
		help: ren.NewStyle().Faint(true),
	}
	for _, c := range palette {
		r.disks = append(r.disks, ren.NewStyle().Foreground(lipgloss.Color(c)))
	}
	return r
}

// Render clears the screen and redraws every peg plus the status line.
func (r *Renderer) Render(pegs []game.PegView[uint], moves, undos int) error {
	r.out.ClearScreen()

	var b strings.Builder
	for _, pv := range pegs {
		b.WriteString(" ")
		b.WriteString(r.name.Render(pv.Name))
		b.WriteString(" #")
		for _, d := range pv.Disks {
			b.WriteString(" ")
			b.WriteString(r.diskStyle(d).Render(strconv.FormatUint(uint64(d), 10)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n ")
	b.WriteString(r.help.Render(fmt.Sprintf(
		"%d moved · %d undone · from,to moves a disk · /undo · /quit", moves, undos)))
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) diskStyle(d uint) lipgloss.Style {
	return r.disks[int(d)%len(r.disks)]
}
