// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole

// Console capability interfaces.
//
// Each capability is generic over the computation types of its execution
// context: F for unit-result computations, S for line-result computations.
// The interfaces declare what happens (a line is written, a line is read),
// never how or when the context runs it.

// Writer is the output capability.
// Operations append text to the output channel exactly once per
// invocation, in the order the caller sequences them.
type Writer[F any] interface {
	// WriteLine writes text followed by a line terminator.
	WriteLine(text string) F
	// Write writes text with no line terminator.
	Write(text string) F
}

// ErrorWriter is the error-output capability.
// Independent of [Writer]: an implementation may route the two channels to
// different destinations, and no ordering is defined between them.
type ErrorWriter[F any] interface {
	// WriteError writes text followed by a line terminator to the error channel.
	WriteError(text string) F
}

// Reader is the input capability.
// Whether ReadLine blocks, suspends, or polls is a property of the
// execution context, not of this interface.
type Reader[S any] interface {
	// ReadLine produces the next line of input, without its terminator.
	ReadLine() S
}

// Console is the aggregate capability: any Console is simultaneously a
// Writer, an ErrorWriter, and a Reader.
type Console[F, S any] interface {
	Writer[F]
	ErrorWriter[F]
	Reader[S]
}

// Show renders a value of type A as text.
// A Show value is resolved statically at the call site; the write helpers
// below apply it before constructing the effect, so a rendered write is
// indistinguishable from a raw-text write of the same string.
type Show[A any] func(A) string

// WriteLineShow renders a and writes it with a line terminator.
func WriteLineShow[F, A any](w Writer[F], show Show[A], a A) F {
	return w.WriteLine(show(a))
}

// WriteShow renders a and writes it with no line terminator.
func WriteShow[F, A any](w Writer[F], show Show[A], a A) F {
	return w.Write(show(a))
}

// WriteErrorShow renders a and writes it to the error channel.
func WriteErrorShow[F, A any](w ErrorWriter[F], show Show[A], a A) F {
	return w.WriteError(show(a))
}

// combined assembles a Console from independent capability values.
type combined[F, S any] struct {
	Writer[F]
	ErrorWriter[F]
	Reader[S]
}

// Combine assembles a full Console from independent partial capabilities.
// The parts keep their own destinations and ordering; Combine adds no
// coordination between them.
func Combine[F, S any](w Writer[F], e ErrorWriter[F], r Reader[S]) Console[F, S] {
	return combined[F, S]{Writer: w, ErrorWriter: e, Reader: r}
}
