package zero

// ZeroValue returns the zero value of the given type.
func ZeroValue[T any]() T {
	var t T
	return t
}

// ZeroValuePtr returns a pointer to the zero value of the given type.
func ZeroValuePtr[T any]() *T {
	var t T
	return &t
}
