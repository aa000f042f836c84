package seqs

import "github.com/ib-77/wrap/pkg/wrap"

// At returns the element at index i. Negative i counts from the end, so
// At(s, -1) is the last element. Out-of-range indexes yield None.
func At[T any](s []T, i int) wrap.Maybe[T] {
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		return wrap.None[T]()
	}
	return wrap.Some(s[i])
}

func First[T any](s []T) wrap.Maybe[T] {
	return At(s, 0)
}

func Last[T any](s []T) wrap.Maybe[T] {
	return At(s, -1)
}

// Swap returns a copy of s with the elements at i and j exchanged. Negative
// indexes count from the end. Either index out of range yields None.
func Swap[T any](s []T, i, j int) wrap.Maybe[[]T] {
	if i < 0 {
		i += len(s)
	}
	if j < 0 {
		j += len(s)
	}
	if i < 0 || i >= len(s) || j < 0 || j >= len(s) {
		return wrap.None[[]T]()
	}
	out := make([]T, len(s))
	copy(out, s)
	out[i], out[j] = out[j], out[i]
	return wrap.Some(out)
}

// Splice returns a copy of s with deleteCount elements removed at start and
// items inserted in their place. Negative start counts from the end; start
// and deleteCount are clamped into range, so Splice is total.
func Splice[T any](s []T, start, deleteCount int, items ...T) []T {
	if start < 0 {
		start += len(s)
	}
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		start = len(s)
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > len(s)-start {
		deleteCount = len(s) - start
	}

	out := make([]T, 0, len(s)-deleteCount+len(items))
	out = append(out, s[:start]...)
	out = append(out, items...)
	out = append(out, s[start+deleteCount:]...)
	return out
}

// Interleave alternates elements of a and b, starting with a, and appends
// the remaining tail of the longer slice.
func Interleave[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		out = append(out, a[i], b[i])
	}
	out = append(out, a[n:]...)
	out = append(out, b[n:]...)
	return out
}
