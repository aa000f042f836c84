package wrap_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/ib-77/wrap/pkg/wrap"
)

func drawResult(t *rapid.T) wrap.Result[int, string] {
	if rapid.Bool().Draw(t, "isOk") {
		return wrap.Ok[int, string](rapid.Int().Draw(t, "okValue"))
	}
	return wrap.Err[int](rapid.String().Draw(t, "errValue"))
}

func drawMaybe(t *rapid.T) wrap.Maybe[int] {
	if rapid.Bool().Draw(t, "isSome") {
		return wrap.Some(rapid.Int().Draw(t, "someValue"))
	}
	return wrap.None[int]()
}

// MapOk with the identity function changes nothing observable.
func TestResultMapIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawResult(t)
		mapped := wrap.MapOk(r, func(v int) int { return v })
		if !r.Equals(mapped) {
			t.Fatalf("identity law violated: %v != %v", r, mapped)
		}
	})
}

// MapOk(f) then MapOk(g) equals MapOk(g ∘ f).
func TestResultMapComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawResult(t)
		addend := rapid.IntRange(-1000, 1000).Draw(t, "addend")
		multiplier := rapid.IntRange(-10, 10).Draw(t, "multiplier")

		f := func(v int) int { return v + addend }
		g := func(v int) int { return v * multiplier }

		chained := wrap.MapOk(wrap.MapOk(r, f), g)
		composed := wrap.MapOk(r, func(v int) int { return g(f(v)) })
		if !chained.Equals(composed) {
			t.Fatalf("composition law violated: %v != %v", chained, composed)
		}
	})
}

// And keeps the first Err, Or keeps the first Ok.
func TestResultAndOrShortCircuit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawResult(t)
		b := drawResult(t)

		and := a.And(b)
		if a.IsErr() && !and.Equals(a) {
			t.Fatalf("And must keep the Err receiver: %v.And(%v) = %v", a, b, and)
		}
		if a.IsOk() && !and.Equals(b) {
			t.Fatalf("And must yield the argument on Ok: %v.And(%v) = %v", a, b, and)
		}

		or := a.Or(b)
		if a.IsOk() && !or.Equals(a) {
			t.Fatalf("Or must keep the Ok receiver: %v.Or(%v) = %v", a, b, or)
		}
		if a.IsErr() && !or.Equals(b) {
			t.Fatalf("Or must yield the argument on Err: %v.Or(%v) = %v", a, b, or)
		}
	})
}

// Exactly one of Ok()/Err() is present, and the present side holds the payload.
func TestResultAccessorsPartition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawResult(t)
		if r.Ok().IsSome() == r.Err().IsSome() {
			t.Fatalf("exactly one accessor must be present: %v", r)
		}
		if r.IsOk() && !r.Contains(r.Unwrap()) {
			t.Fatalf("Ok payload must round-trip through Contains: %v", r)
		}
	})
}

// UnwrapOr agrees with the variant.
func TestResultUnwrapOr(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := drawResult(t)
		def := rapid.Int().Draw(t, "default")
		got := r.UnwrapOr(def)
		if r.IsOk() && got != r.Unwrap() {
			t.Fatalf("UnwrapOr must return the payload on Ok: %v", r)
		}
		if r.IsErr() && got != def {
			t.Fatalf("UnwrapOr must return the default on Err: %v", r)
		}
	})
}

// Maybe map identity.
func TestMaybeMapIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMaybe(t)
		mapped := wrap.MapMaybe(m, func(v int) int { return v })
		if !m.Equals(mapped) {
			t.Fatalf("identity law violated: %v != %v", m, mapped)
		}
	})
}

// Transpose emits None exactly for Ok(None) and otherwise wraps the swapped
// value in Some.
func TestTransposeShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var r wrap.Result[wrap.Maybe[int], string]
		okNone := false
		switch rapid.IntRange(0, 2).Draw(t, "variant") {
		case 0:
			r = wrap.Ok[wrap.Maybe[int], string](wrap.Some(rapid.Int().Draw(t, "value")))
		case 1:
			r = wrap.Ok[wrap.Maybe[int], string](wrap.None[int]())
			okNone = true
		default:
			r = wrap.Err[wrap.Maybe[int]](rapid.String().Draw(t, "errValue"))
		}

		got := wrap.Transpose(r)
		if got.IsNone() != okNone {
			t.Fatalf("None exactly for Ok(None): input=%v output=%v", r, got)
		}
		if inner, present := got.Get(); present {
			if inner.IsOk() != r.IsOk() {
				t.Fatalf("variant must survive the swap: input=%v output=%v", r, got)
			}
		}
	})
}

// OkOr then Ok() round-trips the Maybe.
func TestOkOrRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMaybe(t)
		r := wrap.OkOr(m, "missing")
		if !r.Ok().Equals(m) {
			t.Fatalf("round trip broken: %v -> %v", m, r)
		}
		if m.IsNone() && !r.ContainsErr("missing") {
			t.Fatalf("None must become the supplied Err: %v", r)
		}
	})
}
