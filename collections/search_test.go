package collections

import (
	"errors"
	"testing"
)

func TestIndexOf(t *testing.T) {
	l := NewListOf(5, 6, 7, 6)

	if i, ok := IndexOf(l, 6); !ok || i != 1 {
		t.Errorf("got %d, %v; want 1, true", i, ok)
	}
	if i, ok := IndexOf(l, 5); !ok || i != 0 {
		t.Errorf("got %d, %v; want 0, true", i, ok)
	}
	if _, ok := IndexOf(l, 9); ok {
		t.Error("found a value that is not in the list")
	}
	if _, ok := IndexOf(NewList[int](), 1); ok {
		t.Error("found a value in an empty list")
	}
}

func TestContainsCount(t *testing.T) {
	l := NewListOf(1, 2, 1, 3, 1)

	if c := ContainsCount(l, 1); c != 3 {
		t.Errorf("got %d, want 3", c)
	}
	if c := ContainsCount(l, 2); c != 1 {
		t.Errorf("got %d, want 1", c)
	}
	if c := ContainsCount(l, 9); c != 0 {
		t.Errorf("got %d, want 0", c)
	}
}

func TestRemoveByValue(t *testing.T) {
	t.Run("removes the first occurrence only", func(t *testing.T) {
		l := NewListOf(1, 2, 1, 3)
		v, err := Remove(l, 1)
		if err != nil {
			t.Fatal(err)
		}
		if v != 1 {
			t.Errorf("removed %d, want 1", v)
		}
		checkList(t, l, 2, 1, 3)
	})

	t.Run("missing value", func(t *testing.T) {
		l := NewListOf(1, 2)
		if _, err := Remove(l, 9); !errors.Is(err, ErrValueNotFound) {
			t.Errorf("got %v, want ErrValueNotFound", err)
		}
		checkList(t, l, 1, 2)
	})
}
