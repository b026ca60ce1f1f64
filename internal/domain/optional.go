package domain

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// Optional distinguishes an absent value from a present one, including a
// present zero value. A JSON field that is missing leaves the Optional unset;
// a field that is present, even as null, sets it.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a set Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value when present, fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// MarshalJSON writes null for an unset Optional. Structs embedding Optionals
// that must omit unset fields marshal themselves (see TaskPatch).
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return sonic.Marshal(o.value)
}

// UnmarshalJSON marks the Optional as set. null decodes to the zero value of T.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var zero T
	o.value = zero
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	return sonic.Unmarshal(data, &o.value)
}
