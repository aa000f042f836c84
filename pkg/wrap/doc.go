// Package wrap contains the core algebraic value wrappers shared by the rest
// of the module: Result[T, E] for explicit success/failure and Maybe[T] for
// optional values.
//
// Highlights:
// - Ok/Err: construct Result[T, E]
// - Some/None/FromPtr: construct Maybe[T]
// - And/Or/AndThen/OrElse: short-circuiting composition on Result
// - Map/MapOk/MapErr/Then/Else: type-changing Result combinators
// - Unwrap/UnwrapOr/UnwrapOrElse: extract values, safely or loudly
// - Transpose: swap Result[Maybe[T], E] into Maybe[Result[T, E]]
// - Try: adapt a conventional (T, error) return into a Result
//
// Every value is immutable after construction; combinators always return a
// new value. Concurrent reads need no locking.
package wrap
