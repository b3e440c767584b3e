// Package comparison provides three-way comparators for ordering list
// elements, plus small equality helpers.
package comparison

import "github.com/duyanh-y4n/Collections-C/constraints"

// Comparator is a three-way ordering function: it returns a negative
// value when a orders before b, zero when they are equivalent, and a
// positive value when a orders after b. A comparator must be consistent
// for the duration of a single sort.
type Comparator[T any] func(a, b T) int

// Ordered returns an ascending Comparator for any ordered type.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Descending returns a descending Comparator for any ordered type.
func Descending[T constraints.Ordered]() Comparator[T] {
	return Reversed(Ordered[T]())
}

// Reversed returns a Comparator with the opposite ordering of cmp.
func Reversed[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// By lifts a Comparator over a key extracted from a larger value, so
// composite elements can be ordered by one of their fields.
func By[T any, K any](key func(T) K, cmp Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return cmp(key(a), key(b))
	}
}

// PtrEquals returns true if both pointers are nil, or if neither is nil
// and the values they point to are equivalent.
func PtrEquals[T comparable](a *T, b *T) bool {
	if a != nil {
		return b != nil && *a == *b
	}
	return b == nil
}
