package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// FoldMax returns the largest of floor and every value produced by values.
//
// Parameters:
//   - floor: the starting value, returned unchanged when values is empty
//   - values: the values to fold
//
// Returns:
//   - float32: max(floor, values...)
func FoldMax(floor float32, values ...float32) float32 {
	m := floor
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
