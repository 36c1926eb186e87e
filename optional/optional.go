package optional

// region Optional /////////////////////////////////////////////////////////////////////////////////////////////////////

// Optional is a container that either holds a value of type T or is empty. It makes "value absent" distinguishable
// from "value is the zero value of T" at the type level.
type Optional[T any] struct {
	value   T
	present bool
}

// Some creates a new Optional that holds the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

// None creates a new empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPair creates an Optional from Go's native (value, ok) lookup form.
func FromPair[T any](value T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// HasValue returns true if the Optional holds a value.
func (o Optional[T]) HasValue() bool {
	return o.present
}

// Get returns the held value together with a flag that indicates whether the value is present.
func (o Optional[T]) Get() (value T, present bool) {
	return o.value, o.present
}

// OrElse returns the held value or the given fallback if the Optional is empty.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// OrZero returns the held value or the zero value of T if the Optional is empty.
func (o Optional[T]) OrZero() (value T) {
	return o.value
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
