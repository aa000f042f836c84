package dict

import (
	"cmp"
	"slices"

	"github.com/ib-77/wrap/pkg/wrap"
)

// Keys returns the keys of m in ascending order. Sorting makes enumeration
// deterministic across runs, unlike ranging over the map directly.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get looks up k and returns Some of the value, or None when the key is
// absent.
func Get[K comparable, V any](m map[K]V, k K) wrap.Maybe[V] {
	if v, ok := m[k]; ok {
		return wrap.Some(v)
	}
	return wrap.None[V]()
}

// Objectify indexes s by the key derived from each element. When two
// elements share a key, the later one wins.
func Objectify[T any, K comparable](s []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, el := range s {
		out[key(el)] = el
	}
	return out
}
