// Package limiter selects trailing windows of slices.
package limiter

// TailBounds returns the [start, end) window holding the last n of length
// items. n <= 0 selects everything.
func TailBounds(length, n int) (start, end int) {
	if n > 0 {
		return max(length-n, 0), length
	}
	return 0, length
}

// Tail returns a copy of the last n items. n <= 0 keeps everything. The input
// is never modified, so callers may keep using it.
func Tail[T any](items []T, n int) []T {
	start, end := TailBounds(len(items), n)
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
