// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Sync is the lift primitive an execution context must supply for the
// stream console: run a synchronous side-effecting computation and
// produce its result in the context. Unit lifts effect-only
// computations, Line lifts computations producing one line of text.
type Sync[F, S any] struct {
	Unit func(func() error) F
	Line func(func() (string, error)) S
}

// streamConsole is the default console implementation: a thin wrapper
// around plain stream I/O, lifted into the context via Sync. It holds no
// state beyond one line reader on the input stream and performs no
// locking; the streams are treated as externally synchronized.
type streamConsole[F, S any] struct {
	sync Sync[F, S]
	in   *bufio.Reader
	out  io.Writer
	err  io.Writer
}

// NewConsole creates a console over explicit streams. The input stream
// is wrapped in a single line reader owned by the console.
func NewConsole[F, S any](sync Sync[F, S], in io.Reader, out, errOut io.Writer) Console[F, S] {
	return &streamConsole[F, S]{
		sync: sync,
		in:   bufio.NewReader(in),
		out:  out,
		err:  errOut,
	}
}

// NewStdConsole creates a console over the process standard streams.
func NewStdConsole[F, S any](sync Sync[F, S]) Console[F, S] {
	return NewConsole(sync, os.Stdin, os.Stdout, os.Stderr)
}

// Interactive reports whether standard input and standard output are
// both attached to a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (c *streamConsole[F, S]) WriteLine(text string) F {
	return c.sync.Unit(func() error {
		_, err := io.WriteString(c.out, text+"\n")
		return err
	})
}

func (c *streamConsole[F, S]) Write(text string) F {
	return c.sync.Unit(func() error {
		_, err := io.WriteString(c.out, text)
		return err
	})
}

func (c *streamConsole[F, S]) WriteError(text string) F {
	return c.sync.Unit(func() error {
		_, err := io.WriteString(c.err, text+"\n")
		return err
	})
}

// ReadLine reads up to the next line terminator and strips it ("\n" or
// "\r\n"). End of input with a partial line delivers that line; the
// following read surfaces the stream error (io.EOF) unchanged.
func (c *streamConsole[F, S]) ReadLine() S {
	return c.sync.Line(func() (string, error) {
		line, err := c.in.ReadString('\n')
		if err != nil {
			if line == "" {
				return "", err
			}
			return trimLineTerminator(line), nil
		}
		return trimLineTerminator(line), nil
	})
}

func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
