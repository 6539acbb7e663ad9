// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/konsole"
)

func TestRecorderFixedInput(t *testing.T) {
	rec := konsole.NewRecorder(konsole.SyncIO, "fixed")

	for range 3 {
		line, err := rec.ReadLine()()
		require.NoError(t, err)
		assert.Equal(t, "fixed", line)
	}
}

func TestRecorderQueuedInput(t *testing.T) {
	rec := konsole.NewRecorder(konsole.SyncIO, "fallback")
	rec.QueueInput("first", "second")

	var got []string
	for range 4 {
		line, err := rec.ReadLine()()
		require.NoError(t, err)
		got = append(got, line)
	}
	assert.Equal(t, []string{"first", "second", "fallback", "fallback"}, got)
}

func TestRecorderChannelIndependence(t *testing.T) {
	rec := konsole.NewRecorder(konsole.SyncIO, "")

	// Interleave the three channels; each sequence keeps only its own order.
	ops := []konsole.IO[konsole.Unit]{
		rec.WriteLine("l1"),
		rec.WriteError("e1"),
		rec.Write("w1"),
		rec.WriteLine("l2"),
		rec.Write("w2"),
		rec.WriteError("e2"),
		rec.WriteLine("l3"),
	}
	for _, op := range ops {
		_, err := op()
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"l1", "l2", "l3"}, rec.Lines())
	assert.Equal(t, []string{"w1", "w2"}, rec.Writes())
	assert.Equal(t, []string{"e1", "e2"}, rec.Errors())
}

func TestRecorderAccessorsReturnCopies(t *testing.T) {
	rec := konsole.NewRecorder(konsole.SyncIO, "")
	_, err := rec.WriteLine("original")()
	require.NoError(t, err)

	lines := rec.Lines()
	lines[0] = "mutated"

	assert.Equal(t, []string{"original"}, rec.Lines())
}

func TestRecorderStrictContext(t *testing.T) {
	rec := konsole.NewRecorder(konsole.SyncEither, "in")

	res := rec.WriteLine("now")
	require.True(t, res.IsRight())
	assert.Equal(t, []string{"now"}, rec.Lines())

	line, ok := rec.ReadLine().GetRight()
	require.True(t, ok)
	assert.Equal(t, "in", line)
}
