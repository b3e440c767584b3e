package numbers

import "github.com/duyanh-y4n/Collections-C/constraints"

// Min returns the smallest of the given values.
func Min[T constraints.Ordered](val1 T, vals ...T) T {
	m := val1
	for _, v := range vals {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest of the given values.
func Max[T constraints.Ordered](val1 T, vals ...T) T {
	m := val1
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}
