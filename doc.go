// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package konsole provides execution-context-agnostic console capabilities
// in Go.
//
// The package defines small capability interfaces for writing, error
// reporting, and reading lines on a console, without committing to a
// concrete execution strategy. An implementation built for one execution
// context can be reused under another by translating its computations,
// operation by operation, through a structure-preserving translator.
//
// # Design Philosophy
//
// konsole provides:
//   - Minimal, independently implementable capability interfaces
//   - Context translation that preserves operation order and content
//   - Static, render-function-based polymorphism for displayable values
//
// # Context Encoding
//
// Go has no higher-kinded type parameters, so an execution context is
// encoded by the pair of computation types a console produces:
//
//   - F: a computation run only for its effect (unit result)
//   - S: a computation yielding one line of text
//
// A strict context may choose F = Either[error, Unit] and
// S = Either[error, string]; a deferred context F = IO[Unit] and
// S = IO[string]. The capability interfaces are generic over the pair and
// never inspect it.
//
// # Capability Interfaces
//
//   - [Writer]: WriteLine and Write to the output channel
//   - [ErrorWriter]: WriteError to the error channel
//   - [Reader]: ReadLine from the input channel
//   - [Console]: all three, structurally composed
//   - [Combine]: assemble a Console from independent partial capabilities
//
// Operations on the same channel observe the caller's sequencing order.
// No ordering is defined across distinct channels.
//
// # Displayable Values
//
// Write operations accept rendered text. Any value with a rendering
// function participates through the generic helpers:
//
//   - [Show]: a rendering function from A to text
//   - [WriteLineShow], [WriteShow], [WriteErrorShow]: render, then write
//   - [ShowString], [ShowBool], [ShowInt], [ShowInt64], [ShowFloat64],
//     [ShowStringer]: stock renderings
//
// Rendering happens before the effect is constructed, so the displayable
// form and the raw-text form of a write are indistinguishable downstream.
//
// # Context Translation
//
// A [Trans] value maps computations from one context pair to another. The
// adapt functions re-expose an implementation under the target context,
// applying the translator uniformly and exactly once per operation:
//
//   - [AdaptWriter], [AdaptErrorWriter], [AdaptReader]: per capability
//   - [AdaptConsole]: the aggregate
//   - [ComposeTrans]: sequential composition of translators
//   - [IdentityTrans]: the unit of composition
//
// Adaptation is associative: adapting with t1 then t2 is observationally
// equal to adapting once with ComposeTrans(t1, t2). Translators re-express
// failures in the target context without altering their content and never
// turn success into failure or vice versa.
//
// # Default Implementation
//
// The stream console wraps a [Sync] primitive — "lift this synchronous
// computation into the context" — around plain stream I/O:
//
//   - [Sync]: the lift primitive a context must supply
//   - [NewConsole]: console over explicit in/out/error streams
//   - [NewStdConsole]: console over the process standard streams
//   - [Interactive]: whether the standard streams are attached to a terminal
//
// # Reference Contexts
//
// Two concrete contexts ship with the package:
//
//   - [IO]: deferred synchronous computation, with [Delay], [DelayUnit],
//     [PureIO], [FailIO], [BindIO], [MapIO], [ThenIO], [AttemptIO]
//   - [Either]: strict result, with [Left], [Right], [MatchEither],
//     [MapEither], [FlatMapEither], [MapLeftEither]
//
// together with the lift instances [SyncIO] and [SyncEither] and the stock
// translators [TransAttempt] (embed IO results into Either-carrying IO)
// and [TransRun] (force IO into Either).
//
// # Test Doubles
//
// [Recorder] is an in-memory console that appends each write to one of
// three ordered sequences (lines, unterminated writes, errors) and serves
// reads from a configured value. It is the intended way to assert the
// exact textual effects a program produces.
//
// # Log Sink
//
// [LogWriter] routes console traffic into a zap logger: writer operations
// at info level, error-writer operations at error level. It implements
// only the write-side capabilities; use [Combine] to pair it with a
// Reader when a full Console is required.
//
// # Example
//
//	c := konsole.NewRecorder(konsole.SyncIO, "test")
//	prog := konsole.ThenIO(
//		c.WriteLine("a"),
//		konsole.BindIO(c.ReadLine(), func(line string) konsole.IO[string] {
//			return konsole.ThenIO(c.WriteError("oops"), konsole.PureIO(line))
//		}),
//	)
//	line, err := prog()
//	// line == "test", err == nil
//	// c.Lines() == ["a"], c.Errors() == ["oops"]
package konsole
