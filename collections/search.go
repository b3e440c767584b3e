package collections

import (
	"github.com/Invicton-Labs/go-stackerr"

	"github.com/duyanh-y4n/Collections-C/zero"
)

// Value search needs ==, which methods on List[T any] cannot require,
// so these live at package level for comparable payloads.

// IndexOf returns the index of the first occurrence of value, scanning
// forward from the head, and whether it was found.
func IndexOf[T comparable](l List[T], value T) (int, bool) {
	it := l.Iter()
	for i := 0; it.HasNext(); i++ {
		v, err := it.Next()
		if err != nil {
			return -1, false
		}
		if v == value {
			return i, true
		}
	}
	return -1, false
}

// ContainsCount returns the number of occurrences of value in the list.
func ContainsCount[T comparable](l List[T], value T) int {
	count := 0
	l.ForEach(func(v T) {
		if v == value {
			count++
		}
	})
	return count
}

// Remove removes the first occurrence of value from the list and
// returns the removed payload, or ErrValueNotFound.
func Remove[T comparable](l List[T], value T) (T, stackerr.Error) {
	it := l.Iter()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return zero.ZeroValue[T](), err
		}
		if v == value {
			return it.Remove()
		}
	}
	return zero.ZeroValue[T](), stackerr.Wrap(ErrValueNotFound)
}
