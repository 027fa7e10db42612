// Package eventlog records quiz engine events. Recorder appends them to the
// SQLite event store; Writer exports the same events as JSON Lines.
package eventlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/certquiz/internal/config"
	"github.com/abhisek/certquiz/internal/quiz"
)

// Record is one line of the trail.
type Record struct {
	Seq int64 `json:"seq"`
	quiz.Event
}

// Writer is a quiz.Observer that encodes each event as a Record. A failed
// write never reaches the engine; the first error is kept and returned by
// Err and Close.
type Writer struct {
	enc    *json.Encoder
	closer io.Closer
	seq    int64
	err    error
}

// New writes records to w. Close does not close w.
func New(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Open appends records to the file at path, creating it and its parent
// directory as needed.
func Open(path string) (*Writer, error) {
	if err := config.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create event log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	w := New(f)
	w.closer = f
	return w, nil
}

// Observe appends ev to the trail.
func (w *Writer) Observe(ev quiz.Event) {
	if w.err != nil {
		return
	}
	w.seq++
	if err := w.enc.Encode(Record{Seq: w.seq, Event: ev}); err != nil {
		w.err = fmt.Errorf("write event %d: %w", w.seq, err)
	}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Close releases the underlying file and reports the first error seen.
func (w *Writer) Close() error {
	if w.closer != nil {
		if err := w.closer.Close(); err != nil && w.err == nil {
			w.err = fmt.Errorf("close event log: %w", err)
		}
		w.closer = nil
	}
	return w.err
}
