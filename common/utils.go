package common

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
// Configuration layers use it to let explicit settings win over file settings over defaults.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
