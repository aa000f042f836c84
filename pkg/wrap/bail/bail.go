package bail

import "github.com/ib-77/wrap/pkg/wrap"

// Step is the outcome of a single callback invocation: either continue the
// traversal with an A, or bail out of it with a B. Steps are built through a
// Bailer; the zero Step continues with a zero A.
type Step[A, B any] struct {
	acc    A
	out    B
	bailed bool
}

// Bailer mints Steps for one traversal. It is handed to the callback so both
// constructors infer their type arguments from the call site.
type Bailer[A, B any] struct{}

// Continue produces a step that keeps the traversal going with v.
func (Bailer[A, B]) Continue(v A) Step[A, B] {
	return Step[A, B]{acc: v}
}

// Bail produces a step that halts the traversal, surfacing v as the
// failure payload.
func (Bailer[A, B]) Bail(v B) Step[A, B] {
	return Step[A, B]{out: v, bailed: true}
}

// Fold is a left fold over seq that the reducer may abort. The reducer
// receives the accumulator, the current element and a Bailer; returning
// b.Bail(v) stops iteration immediately (later elements are never visited)
// and yields Err(v). If the whole sequence is consumed, Fold yields
// Ok of the final accumulator. seq is never mutated; an empty or nil seq
// yields Ok(init).
func Fold[T, A, B any](seq []T, init A, reducer func(acc A, el T, b Bailer[A, B]) Step[A, B]) wrap.Result[A, B] {
	var b Bailer[A, B]
	acc := init
	for _, el := range seq {
		step := reducer(acc, el, b)
		if step.bailed {
			return wrap.Err[A](step.out)
		}
		acc = step.acc
	}
	return wrap.Ok[A, B](acc)
}

// Map applies mapper to each element in order, collecting the outputs. The
// first b.Bail(v) stops iteration immediately and yields Err(v); otherwise
// Map yields Ok of the mapped slice, same length and order as seq. seq is
// never mutated; an empty or nil seq yields Ok of an empty slice.
func Map[T, U, B any](seq []T, mapper func(el T, b Bailer[U, B]) Step[U, B]) wrap.Result[[]U, B] {
	var b Bailer[U, B]
	mapped := make([]U, 0, len(seq))
	for _, el := range seq {
		step := mapper(el, b)
		if step.bailed {
			return wrap.Err[[]U](step.out)
		}
		mapped = append(mapped, step.acc)
	}
	return wrap.Ok[[]U, B](mapped)
}
