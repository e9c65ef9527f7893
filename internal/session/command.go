// internal/session/command.go
//
// Line-oriented command grammar for the interactive session.
// Shapes:
//   - "/quit", "/undo": directives. Any other "/..." line is recognized as a
//     directive but maps to no operation.
//   - "from,to": a move command. Only the first comma splits; names are taken
//     verbatim, no trimming.
//   - Anything else is unrecognized and ignored.

package session

import "strings"

const (
	directivePrefix = "/"
	moveSeparator   = ","
)

// Kind classifies a parsed command.
type Kind int

const (
	KindNone Kind = iota // recognized directive with no operation
	KindMove
	KindUndo
	KindQuit
)

// Command is the result of parsing one input line.
// From and To are only meaningful for KindMove.
type Command struct {
	Kind Kind
	From string
	To   string
}

// Parse interprets one line of input.
// ok is false when the line matches no command shape at all.
func Parse(line string) (cmd Command, ok bool) {
	if rest, found := strings.CutPrefix(line, directivePrefix); found {
		switch rest {
		case "quit":
			return Command{Kind: KindQuit}, true
		case "undo":
			return Command{Kind: KindUndo}, true
		default:
			return Command{Kind: KindNone}, true
		}
	}
	if from, to, found := strings.Cut(line, moveSeparator); found {
		return Command{Kind: KindMove, From: from, To: to}, true
	}
	return Command{}, false
}
