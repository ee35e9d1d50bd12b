package gutil

import (
	"cmp"
	"slices"
)

// MapGetOrDefault returns m[key] if key is present and def otherwise.
// The map is never modified; a nil map always yields def.
func MapGetOrDefault[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}

	return def
}

// Clamp restricts val to [lowerBound, upperBound].
//
// Note the argument order: the upper bound comes first. The bounds are not
// reordered: with lowerBound > upperBound the result is min(max(val,
// lowerBound), upperBound), which is always upperBound.
func Clamp[T cmp.Ordered](val, upperBound, lowerBound T) T {
	return min(max(val, lowerBound), upperBound)
}

// VecContains reports whether x is in s.
func VecContains[T comparable](s []T, x T) bool {
	return slices.Contains(s, x)
}

// VecIndexOf returns the index of the first x in s, or -1.
func VecIndexOf[T comparable](s []T, x T) int {
	return slices.Index(s, x)
}
