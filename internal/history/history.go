// internal/history/history.go
//
// Journal of applied transfers for a session.
// This is a lightweight persistence layer: the in-memory implementation here
// is the default (and what tests use); sqlite.go adds a durable variant.
//
// Characteristics:
//   - Entries are append-only; the session assigns monotonically increasing
//     sequence numbers.
//   - Concurrency-safe via RWMutex, so a future observer can read while the
//     session writes.
//   - Recorder errors never abort the session; callers log and move on.

package history

import (
	"context"
	"sync"
	"time"
)

// Entry describes one applied transfer.
type Entry struct {
	Seq  int       // 1-based position in the session
	From string    // source peg name
	To   string    // destination peg name
	Undo bool      // true when the transfer reversed the previous one
	At   time.Time // when the transfer was applied
}

// Recorder persists applied transfers.
// Implementations may be backed by memory (this package), SQLite, etc.
type Recorder interface {
	// Record persists one entry.
	Record(ctx context.Context, e Entry) error

	// Close releases any underlying resources.
	Close() error
}

// Memory is an in-memory append-only Recorder.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemory constructs an empty in-memory recorder.
func NewMemory() *Memory {
	return &Memory{}
}

// Record appends the entry.
func (m *Memory) Record(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

// Close is a no-op for the in-memory recorder.
func (m *Memory) Close() error { return nil }

// Entries returns a copy of everything recorded so far.
func (m *Memory) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
