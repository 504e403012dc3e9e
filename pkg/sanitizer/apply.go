package sanitizer

import "slices"

// Apply runs value through transforms in order. Validators use it to
// normalize raw input before checking it.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Compose freezes transforms into one normalization step, for validators that
// run the same steps on every value. Later changes to the caller's slice do
// not affect the returned function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	steps := slices.Clone(transforms)
	return func(value T) T {
		return Apply(value, steps...)
	}
}
