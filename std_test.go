// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"code.hybscloud.com/konsole"
)

func TestStreamConsoleWrites(t *testing.T) {
	var out, errOut bytes.Buffer
	c := konsole.NewConsole(konsole.SyncEither, strings.NewReader(""), &out, &errOut)

	mustRight(t, c.WriteLine("hello"))
	mustRight(t, c.Write("wor"))
	mustRight(t, c.Write("ld"))
	mustRight(t, c.WriteError("bad"))

	if got := out.String(); got != "hello\nworld" {
		t.Fatalf("got output %q, want %q", got, "hello\nworld")
	}
	if got := errOut.String(); got != "bad\n" {
		t.Fatalf("got error output %q, want %q", got, "bad\n")
	}
}

func TestStreamConsoleReadLine(t *testing.T) {
	var out bytes.Buffer
	c := konsole.NewConsole(konsole.SyncEither, strings.NewReader("one\ntwo\r\nlast"), &out, &out)

	for _, want := range []string{"one", "two", "last"} {
		if got := mustRight(t, c.ReadLine()); got != want {
			t.Fatalf("got line %q, want %q", got, want)
		}
	}

	res := c.ReadLine()
	err, ok := res.GetLeft()
	if !ok {
		t.Fatalf("got Right past end of input, want failure")
	}
	if !errors.Is(err, io.EOF) {
		t.Fatalf("got error %v, want io.EOF", err)
	}
}

// failWriter fails every write with a fixed error.
type failWriter struct{ err error }

func (w failWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestStreamConsoleWriteFailure(t *testing.T) {
	sinkErr := errors.New("sink closed")
	c := konsole.NewConsole(konsole.SyncEither, strings.NewReader(""), failWriter{err: sinkErr}, io.Discard)

	res := c.WriteLine("x")
	err, ok := res.GetLeft()
	if !ok {
		t.Fatalf("got Right, want write failure")
	}
	if !errors.Is(err, sinkErr) {
		t.Fatalf("got error %v, want %v", err, sinkErr)
	}
}

func TestStdConsoleConstruction(t *testing.T) {
	// Constructing the std console and building computations under IO
	// must not touch the process streams.
	c := konsole.NewStdConsole(konsole.SyncIO)
	_ = c.WriteLine("never runs")
	_ = c.ReadLine()
	_ = konsole.Interactive()
}

func TestStreamConsoleDefersUnderIO(t *testing.T) {
	var out bytes.Buffer
	c := konsole.NewConsole(konsole.SyncIO, strings.NewReader(""), &out, &out)

	m := c.WriteLine("later")
	if out.Len() != 0 {
		t.Fatalf("write ran at construction time: %q", out.String())
	}
	mustRun(t, m)
	if got := out.String(); got != "later\n" {
		t.Fatalf("got output %q, want %q", got, "later\n")
	}
	// Invoking the same deferred computation runs the effect again.
	mustRun(t, m)
	if got := out.String(); got != "later\nlater\n" {
		t.Fatalf("got output %q, want %q", got, "later\nlater\n")
	}
}
