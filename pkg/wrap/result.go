package wrap

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant tagged union: Ok carrying a T, or Err carrying an E.
// The variant is fixed at construction and the payload never changes; every
// combinator returns a new Result. Each Result is stamped with a unique id
// and its UTC creation time for traceability, neither participates in
// Equals/Contains.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	ok        T
	err       E
	isOk      bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		ok:        v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Ok returns the success payload as a Maybe: Some on Ok, None on Err.
func (r Result[T, E]) Ok() Maybe[T] {
	if r.isOk {
		return Some(r.ok)
	}
	return None[T]()
}

// Err returns the failure payload as a Maybe: Some on Err, None on Ok.
func (r Result[T, E]) Err() Maybe[E] {
	if r.isOk {
		return None[E]()
	}
	return Some(r.err)
}

// And returns other when r is Ok and r itself when r is Err.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return other
	}
	return r
}

// Or returns r when r is Ok and other when r is Err.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return other
}

// AndThen feeds the success payload to fn and returns its Result; an Err
// passes through untouched. For a type-changing variant see Then.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	if r.isOk {
		return fn(r.ok)
	}
	return r
}

// OrElse feeds the failure payload to fn and returns its Result; an Ok
// passes through untouched. For a type-changing variant see Else.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.isOk {
		return r
	}
	return fn(r.err)
}

// Unwrap returns the success payload. Calling it on an Err is a contract
// violation and panics.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic("attempted to unwrap ERR result")
	}
	return r.ok
}

// UnwrapErr returns the failure payload. Calling it on an Ok is a contract
// violation and panics.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic("attempted to unwrap OK result")
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isOk {
		return r.ok
	}
	return def
}

func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.isOk {
		return r.ok
	}
	return fn(r.err)
}

// Contains reports whether r is Ok and its payload deep-equals v.
func (r Result[T, E]) Contains(v T) bool {
	return r.isOk && reflect.DeepEqual(r.ok, v)
}

// ContainsErr reports whether r is Err and its payload deep-equals e.
func (r Result[T, E]) ContainsErr(e E) bool {
	return !r.isOk && reflect.DeepEqual(r.err, e)
}

// Equals reports structural equality: same variant and deep-equal payload.
// The id and creation time are ignored.
func (r Result[T, E]) Equals(other Result[T, E]) bool {
	if r.isOk != other.isOk {
		return false
	}
	if r.isOk {
		return reflect.DeepEqual(r.ok, other.ok)
	}
	return reflect.DeepEqual(r.err, other.err)
}

// Inspect runs fn on the success payload, if any, and returns r unchanged.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.isOk && fn != nil {
		fn(r.ok)
	}
	return r
}

// InspectErr runs fn on the failure payload, if any, and returns r unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.isOk && fn != nil {
		fn(r.err)
	}
	return r
}

// String renders the variant name with the Go-syntax representation of the
// payload, e.g. Ok("foo") or Err(42).
func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%#v)", r.ok)
	}
	return fmt.Sprintf("Err(%#v)", r.err)
}

func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
