// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole

import "slices"

// Recorder is an in-memory console for tests. Each write appends its
// rendered text to one of three ordered sequences, one per channel;
// reads serve queued lines first and fall back to a fixed configured
// value on every further call.
//
// A Recorder is not safe for concurrent mutation; the owning test
// serializes access.
type Recorder[F, S any] struct {
	sync    Sync[F, S]
	input   string
	pending []string
	lines   []string
	writes  []string
	errors  []string
}

// NewRecorder creates a recorder in the context lifted by sync.
// input is the line every ReadLine produces unless lines are queued.
func NewRecorder[F, S any](sync Sync[F, S], input string) *Recorder[F, S] {
	return &Recorder[F, S]{sync: sync, input: input}
}

// QueueInput queues lines to be served by ReadLine, in order, before the
// fixed input value.
func (r *Recorder[F, S]) QueueInput(lines ...string) {
	r.pending = append(r.pending, lines...)
}

func (r *Recorder[F, S]) WriteLine(text string) F {
	return r.sync.Unit(func() error {
		r.lines = append(r.lines, text)
		return nil
	})
}

func (r *Recorder[F, S]) Write(text string) F {
	return r.sync.Unit(func() error {
		r.writes = append(r.writes, text)
		return nil
	})
}

func (r *Recorder[F, S]) WriteError(text string) F {
	return r.sync.Unit(func() error {
		r.errors = append(r.errors, text)
		return nil
	})
}

func (r *Recorder[F, S]) ReadLine() S {
	return r.sync.Line(func() (string, error) {
		if len(r.pending) > 0 {
			line := r.pending[0]
			r.pending = r.pending[1:]
			return line, nil
		}
		return r.input, nil
	})
}

// Lines returns the recorded WriteLine entries in invocation order.
func (r *Recorder[F, S]) Lines() []string { return slices.Clone(r.lines) }

// Writes returns the recorded Write entries in invocation order.
func (r *Recorder[F, S]) Writes() []string { return slices.Clone(r.writes) }

// Errors returns the recorded WriteError entries in invocation order.
func (r *Recorder[F, S]) Errors() []string { return slices.Clone(r.errors) }
