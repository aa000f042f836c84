package wrap

import (
	"fmt"
	"reflect"
)

// Maybe is a two-variant optional value: Some carrying a T, or None.
// Construction is the only way to set the variant; all accessors are total
// and never panic.
type Maybe[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, some: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr converts a nullable pointer into a Maybe: nil maps to None,
// anything else to Some of the pointee.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (m Maybe[T]) IsSome() bool {
	return m.some
}

func (m Maybe[T]) IsNone() bool {
	return !m.some
}

// Get returns the wrapped value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.some
}

func (m Maybe[T]) UnwrapOr(def T) T {
	if m.some {
		return m.value
	}
	return def
}

func (m Maybe[T]) UnwrapOrElse(fn func() T) T {
	if m.some {
		return m.value
	}
	return fn()
}

// Or returns m when it is Some and other when it is None.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.some {
		return m
	}
	return other
}

// Filter keeps a Some only when pred accepts its value.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.some && pred(m.value) {
		return m
	}
	return None[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil on None.
func (m Maybe[T]) ToPtr() *T {
	if m.some {
		v := m.value
		return &v
	}
	return nil
}

// Equals reports structural equality: same variant and deep-equal value.
func (m Maybe[T]) Equals(other Maybe[T]) bool {
	if m.some != other.some {
		return false
	}
	return !m.some || reflect.DeepEqual(m.value, other.value)
}

// String renders Some with the Go-syntax representation of its value,
// e.g. Some("foo") or None.
func (m Maybe[T]) String() string {
	if m.some {
		return fmt.Sprintf("Some(%#v)", m.value)
	}
	return "None"
}
