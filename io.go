// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole

// The IO reference context.
//
// IO[A] is a deferred synchronous computation: nothing runs until the
// value is invoked. Minimal definition: Delay (construction) and BindIO
// (sequencing). MapIO and ThenIO are derived operations kept as
// optimizations to avoid intermediate closures.

// Unit is the result type of computations run only for their effects.
type Unit struct{}

// IO is a deferred synchronous computation producing A or failing with
// an error. Invoking the value runs it; each invocation runs the effect
// again.
type IO[A any] func() (A, error)

// Delay defers a synchronous computation into the IO context.
func Delay[A any](f func() (A, error)) IO[A] {
	return IO[A](f)
}

// DelayUnit defers an effect-only computation into the IO context.
func DelayUnit(f func() error) IO[Unit] {
	return func() (Unit, error) {
		return Unit{}, f()
	}
}

// PureIO lifts a value into the IO context with no effect.
func PureIO[A any](a A) IO[A] {
	return func() (A, error) { return a, nil }
}

// FailIO lifts a failure into the IO context.
func FailIO[A any](err error) IO[A] {
	return func() (A, error) {
		var zero A
		return zero, err
	}
}

// BindIO sequences two computations: run m, then pass its result to f.
// A failure in m short-circuits; f is never called.
func BindIO[A, B any](m IO[A], f func(A) IO[B]) IO[B] {
	return func() (B, error) {
		a, err := m()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)()
	}
}

// MapIO applies a pure function to the result of a computation.
func MapIO[A, B any](m IO[A], f func(A) B) IO[B] {
	return func() (B, error) {
		a, err := m()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// ThenIO sequences two computations, discarding the first result.
func ThenIO[A, B any](m IO[A], n IO[B]) IO[B] {
	return func() (B, error) {
		if _, err := m(); err != nil {
			var zero B
			return zero, err
		}
		return n()
	}
}

// AttemptIO reifies failure into the result: the returned computation
// never fails, producing Left for a failed m and Right for a successful
// one. Success and failure are preserved as-is, only re-expressed.
func AttemptIO[A any](m IO[A]) IO[Either[error, A]] {
	return func() (Either[error, A], error) {
		a, err := m()
		if err != nil {
			return Left[error, A](err), nil
		}
		return Right[error](a), nil
	}
}

// SyncIO lifts synchronous computations into the IO context by deferring
// them.
var SyncIO = Sync[IO[Unit], IO[string]]{
	Unit: DelayUnit,
	Line: Delay[string],
}

// SyncEither lifts synchronous computations into the Either context by
// running them immediately.
var SyncEither = Sync[Either[error, Unit], Either[error, string]]{
	Unit: func(f func() error) Either[error, Unit] {
		if err := f(); err != nil {
			return Left[error, Unit](err)
		}
		return Right[error](Unit{})
	},
	Line: func(f func() (string, error)) Either[error, string] {
		line, err := f()
		if err != nil {
			return Left[error, string](err)
		}
		return Right[error](line)
	},
}

// TransAttempt embeds the IO context into its Either-carrying form.
// It preserves every observation: the effect still runs when invoked,
// with failure reified into the result instead of the error return.
var TransAttempt = Trans[IO[Unit], IO[string], IO[Either[error, Unit]], IO[Either[error, string]]]{
	Unit: AttemptIO[Unit],
	Line: AttemptIO[string],
}

// TransRun forces the IO context into the strict Either context: the
// deferred computation runs at translation time.
var TransRun = Trans[IO[Unit], IO[string], Either[error, Unit], Either[error, string]]{
	Unit: func(m IO[Unit]) Either[error, Unit] {
		if _, err := m(); err != nil {
			return Left[error, Unit](err)
		}
		return Right[error](Unit{})
	},
	Line: func(m IO[string]) Either[error, string] {
		line, err := m()
		if err != nil {
			return Left[error, string](err)
		}
		return Right[error](line)
	},
}
