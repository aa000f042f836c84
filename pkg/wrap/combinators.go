package wrap

// Type-changing combinators live at package level because Go methods cannot
// introduce new type parameters.

// Map applies the transform matching the variant and wraps the output in a
// new Result. The non-matching transform is never invoked.
func Map[T, E, T2, E2 any](r Result[T, E], okFn func(T) T2, errFn func(E) E2) Result[T2, E2] {
	if r.isOk {
		return Ok[T2, E2](okFn(r.ok))
	}
	return Err[T2](errFn(r.err))
}

// MapOk transforms only the success payload; an Err passes through with its
// payload untouched.
func MapOk[T, E, T2 any](r Result[T, E], fn func(T) T2) Result[T2, E] {
	if r.isOk {
		return Ok[T2, E](fn(r.ok))
	}
	return Err[T2](r.err)
}

// MapErr transforms only the failure payload; an Ok passes through with its
// payload untouched.
func MapErr[T, E, E2 any](r Result[T, E], fn func(E) E2) Result[T, E2] {
	if r.isOk {
		return Ok[T, E2](r.ok)
	}
	return Err[T](fn(r.err))
}

// Then is the type-changing AndThen: on Ok it switches to the Result
// produced by fn, on Err it re-wraps the failure payload at the new
// success type.
func Then[T, E, T2 any](r Result[T, E], fn func(T) Result[T2, E]) Result[T2, E] {
	if r.isOk {
		return fn(r.ok)
	}
	return Err[T2](r.err)
}

// Else is the type-changing OrElse: on Err it switches to the Result
// produced by fn, on Ok it re-wraps the success payload at the new
// failure type.
func Else[T, E, E2 any](r Result[T, E], fn func(E) Result[T, E2]) Result[T, E2] {
	if r.isOk {
		return Ok[T, E2](r.ok)
	}
	return fn(r.err)
}

// Try adapts a conventional (T, error) return into a Result.
func Try[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Transpose swaps the nesting of a Result holding a Maybe:
//
//	Ok(None)    -> None
//	Ok(Some(v)) -> Some(Ok(v))
//	Err(e)      -> Some(Err(e))
//
// Only this Result-of-Maybe swap is supported.
func Transpose[T, E any](r Result[Maybe[T], E]) Maybe[Result[T, E]] {
	if !r.isOk {
		return Some(Err[T](r.err))
	}
	if v, present := r.ok.Get(); present {
		return Some(Ok[T, E](v))
	}
	return None[Result[T, E]]()
}

// MapMaybe transforms the wrapped value of a Some; None stays None.
func MapMaybe[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.some {
		return Some(fn(m.value))
	}
	return None[U]()
}

// ThenMaybe feeds the wrapped value of a Some to fn and returns its Maybe;
// None stays None.
func ThenMaybe[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.some {
		return fn(m.value)
	}
	return None[U]()
}

// OkOr lifts a Maybe into a Result, using e as the failure payload on None.
func OkOr[T, E any](m Maybe[T], e E) Result[T, E] {
	if m.some {
		return Ok[T, E](m.value)
	}
	return Err[T](e)
}
