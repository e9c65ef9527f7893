// internal/session/session.go
//
// Read-eval-render loop for one interactive Hanoi session.
// Responsibilities:
//   - Render the full peg state, block for one line, parse it, dispatch it.
//   - Verify peg names before handing a move to the engine.
//   - Keep the one-slot undo record: set on every successful transfer,
//     swapped in place when an undo fires, untouched on any failure.
//   - Journal every applied transfer through the history recorder.
//
// Notes:
//   - Rejected commands never surface an error to the user; the next render
//     simply shows the unchanged state.
//   - Undo goes through the exact same engine Move as a manual command, so it
//     is subject to the same invariant check. A second undo reverses the
//     first: the record toggles rather than clearing.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hanoi/internal/game"
	"github.com/robalobadob/hanoi/internal/history"
)

// Disk is the disk size type played by interactive sessions.
type Disk = uint

// Renderer draws the full game state between commands.
type Renderer interface {
	Render(pegs []game.PegView[Disk], moves, undos int) error
}

// lastMove is the one-slot undo record.
type lastMove struct {
	from string
	to   string
}

// Session drives one engine from a line-oriented input source.
type Session struct {
	engine   *game.Engine[Disk]
	in       *bufio.Reader
	renderer Renderer
	recorder history.Recorder

	last  *lastMove
	moves int
	undos int
}

// New constructs a session over engine, reading commands from in.
func New(engine *game.Engine[Disk], in io.Reader, r Renderer, rec history.Recorder) *Session {
	return &Session{
		engine:   engine,
		in:       bufio.NewReader(in),
		renderer: r,
		recorder: rec,
	}
}

// Run executes the session loop until /quit or the input closes.
// Unreadable lines are discarded and the loop continues; invalid commands
// change nothing. The returned error is nil on a clean exit.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.renderer.Render(s.engine.Snapshot(), s.moves, s.undos); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			log.Debug().Err(err).Msg("discarding unreadable input")
			continue
		}
		atEOF := errors.Is(err, io.EOF)
		line = strings.TrimRight(line, "\r\n")

		if cmd, ok := Parse(line); ok {
			switch cmd.Kind {
			case KindQuit:
				return nil
			case KindMove:
				s.apply(ctx, cmd.From, cmd.To, false)
			case KindUndo:
				s.undo(ctx)
			}
		}

		// A closed pipe never yields another line; end cleanly instead of
		// spinning on EOF.
		if atEOF {
			log.Debug().Msg("input closed, ending session")
			return nil
		}
	}
}

// Moves reports how many forward transfers have been applied.
func (s *Session) Moves() int { return s.moves }

// Undos reports how many undo transfers have been applied.
func (s *Session) Undos() int { return s.undos }

// apply attempts one transfer and, on success, updates the undo record and
// the journal. Reports whether the transfer was applied.
func (s *Session) apply(ctx context.Context, from, to string, undo bool) bool {
	if !s.engine.Has(from) || !s.engine.Has(to) {
		log.Debug().Str("from", from).Str("to", to).Msg("move names unknown peg")
		return false
	}
	if err := s.engine.Move(from, to); err != nil {
		log.Debug().Err(err).Msg("move rejected")
		return false
	}
	if undo {
		s.undos++
	} else {
		s.moves++
	}
	s.last = &lastMove{from: from, to: to}

	entry := history.Entry{
		Seq:  s.moves + s.undos,
		From: from,
		To:   to,
		Undo: undo,
		At:   time.Now().UTC(),
	}
	if err := s.recorder.Record(ctx, entry); err != nil {
		log.Warn().Err(err).Msg("failed to record transfer")
	}
	return true
}

// undo attempts the reverse of the last applied transfer.
// Does nothing when no transfer has happened yet; on success apply leaves the
// record swapped, so the next undo reverses this one.
func (s *Session) undo(ctx context.Context) {
	if s.last == nil {
		return
	}
	s.apply(ctx, s.last.to, s.last.from, true)
}
