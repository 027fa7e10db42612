package eventlog

import (
	"context"

	"github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/store"
)

// Recorder is a quiz.Observer that appends each event to the SQLite event
// store. Like Writer it never fails the engine: the first error is kept,
// later events are dropped, and Err reports it.
type Recorder struct {
	ctx  context.Context
	repo store.EventRepo
	last int64
	err  error
}

// NewRecorder appends events through repo using ctx for every insert.
func NewRecorder(ctx context.Context, repo store.EventRepo) *Recorder {
	return &Recorder{ctx: ctx, repo: repo}
}

// Observe stores ev.
func (r *Recorder) Observe(ev quiz.Event) {
	if r.err != nil {
		return
	}
	seq, err := r.repo.Append(r.ctx, ev)
	if err != nil {
		r.err = err
		return
	}
	r.last = seq
}

// Last returns the sequence number of the most recently stored event.
func (r *Recorder) Last() int64 { return r.last }

// Err returns the first store error, if any.
func (r *Recorder) Err() error { return r.err }

// Tee fans every event out to each non-nil observer in order.
func Tee(observers ...quiz.Observer) quiz.Observer {
	var live []quiz.Observer
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	if len(live) == 1 {
		return live[0]
	}
	return quiz.ObserverFunc(func(ev quiz.Event) {
		for _, o := range live {
			o.Observe(ev)
		}
	})
}
