package letterfreq

// Flatten concatenates nested slices into one slice, preserving order.
func Flatten[T any](nested [][]T) []T {
	n := 0
	for _, s := range nested {
		n += len(s)
	}
	out := make([]T, 0, n)
	for _, s := range nested {
		out = append(out, s...)
	}
	return out
}
