// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole

// Context translation.
//
// A translator maps computations from context (F, S) to context (G, T)
// without inspecting or altering the value inside. The adapt functions
// wrap an implementation so that every operation first runs on the
// underlying implementation and is then passed through the translator,
// exactly once. Adaptation never reorders, duplicates, or drops an
// operation, and it is associative with respect to [ComposeTrans].
//
// Go methods cannot introduce new type parameters, so adaptation is a
// family of free generic functions rather than a method on [Console].

// Trans translates computations from context (F, S) to context (G, T).
// Unit translates unit-result computations, Line translates line-result
// computations. Both must be total and order-preserving, and must
// re-express failure without altering its content.
type Trans[F, S, G, T any] struct {
	Unit func(F) G
	Line func(S) T
}

// IdentityTrans is the unit of translator composition.
func IdentityTrans[F, S any]() Trans[F, S, F, S] {
	return Trans[F, S, F, S]{
		Unit: func(m F) F { return m },
		Line: func(m S) S { return m },
	}
}

// ComposeTrans composes two translators sequentially: first (F,S)→(G,T),
// then (G,T)→(H,U). Adapting with the composition is observationally
// equal to adapting with first and then with second.
func ComposeTrans[F, S, G, T, H, U any](
	first Trans[F, S, G, T],
	second Trans[G, T, H, U],
) Trans[F, S, H, U] {
	return Trans[F, S, H, U]{
		Unit: func(m F) H { return second.Unit(first.Unit(m)) },
		Line: func(m S) U { return second.Line(first.Line(m)) },
	}
}

// adaptedWriter re-exposes a Writer under a translated context.
type adaptedWriter[F, G any] struct {
	next Writer[F]
	unit func(F) G
}

func (w adaptedWriter[F, G]) WriteLine(text string) G { return w.unit(w.next.WriteLine(text)) }
func (w adaptedWriter[F, G]) Write(text string) G     { return w.unit(w.next.Write(text)) }

// AdaptWriter re-exposes next under the context reached by unit.
func AdaptWriter[F, G any](next Writer[F], unit func(F) G) Writer[G] {
	return adaptedWriter[F, G]{next: next, unit: unit}
}

// adaptedErrorWriter re-exposes an ErrorWriter under a translated context.
type adaptedErrorWriter[F, G any] struct {
	next ErrorWriter[F]
	unit func(F) G
}

func (w adaptedErrorWriter[F, G]) WriteError(text string) G {
	return w.unit(w.next.WriteError(text))
}

// AdaptErrorWriter re-exposes next under the context reached by unit.
func AdaptErrorWriter[F, G any](next ErrorWriter[F], unit func(F) G) ErrorWriter[G] {
	return adaptedErrorWriter[F, G]{next: next, unit: unit}
}

// adaptedReader re-exposes a Reader under a translated context.
type adaptedReader[S, T any] struct {
	next Reader[S]
	line func(S) T
}

func (r adaptedReader[S, T]) ReadLine() T { return r.line(r.next.ReadLine()) }

// AdaptReader re-exposes next under the context reached by line.
// A failing underlying read stays a failure: the translator re-expresses
// it in the target context without touching its content.
func AdaptReader[S, T any](next Reader[S], line func(S) T) Reader[T] {
	return adaptedReader[S, T]{next: next, line: line}
}

// adaptedConsole re-exposes a Console under a translated context.
type adaptedConsole[F, S, G, T any] struct {
	next Console[F, S]
	tr   Trans[F, S, G, T]
}

func (c adaptedConsole[F, S, G, T]) WriteLine(text string) G {
	return c.tr.Unit(c.next.WriteLine(text))
}

func (c adaptedConsole[F, S, G, T]) Write(text string) G {
	return c.tr.Unit(c.next.Write(text))
}

func (c adaptedConsole[F, S, G, T]) WriteError(text string) G {
	return c.tr.Unit(c.next.WriteError(text))
}

func (c adaptedConsole[F, S, G, T]) ReadLine() T {
	return c.tr.Line(c.next.ReadLine())
}

// AdaptConsole re-exposes next under the context reached by tr.
// Each operation translates independently; writer operations go through
// tr.Unit, reads through tr.Line.
func AdaptConsole[F, S, G, T any](next Console[F, S], tr Trans[F, S, G, T]) Console[G, T] {
	return adaptedConsole[F, S, G, T]{next: next, tr: tr}
}
