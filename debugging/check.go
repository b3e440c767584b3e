package debugging

import (
	"reflect"

	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"

	"github.com/duyanh-y4n/Collections-C/collections"
)

// CheckList verifies a list from the outside in: the internal link
// invariant (via Validate), the recorded size against a forward and a
// backward walk, and the endpoint accessors against iteration. All
// findings are combined into a single error; nil means the list is
// consistent.
func CheckList[T any](l collections.List[T]) stackerr.Error {
	var errs error

	if err := l.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}

	var first, last T
	seen := false
	forward := 0
	it := l.Iter()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			errs = multierr.Append(errs, err)
			break
		}
		if forward == 0 {
			first = v
		}
		last = v
		seen = true
		forward++
	}
	if forward != l.Size() {
		errs = multierr.Append(errs, stackerr.Errorf("forward walk found %d elements but size reports %d", forward, l.Size()))
	}

	backward := 0
	dit := l.DescendingIter()
	for dit.HasNext() {
		if _, err := dit.Next(); err != nil {
			errs = multierr.Append(errs, err)
			break
		}
		backward++
	}
	if backward != l.Size() {
		errs = multierr.Append(errs, stackerr.Errorf("backward walk found %d elements but size reports %d", backward, l.Size()))
	}

	if seen {
		if head, err := l.GetFirst(); err != nil {
			errs = multierr.Append(errs, err)
		} else if !reflect.DeepEqual(head, first) {
			errs = multierr.Append(errs, stackerr.Errorf("GetFirst disagrees with the first iterated element"))
		}
		if tail, err := l.GetLast(); err != nil {
			errs = multierr.Append(errs, err)
		} else if !reflect.DeepEqual(tail, last) {
			errs = multierr.Append(errs, stackerr.Errorf("GetLast disagrees with the last iterated element"))
		}
	}

	if errs != nil {
		return stackerr.Wrap(errs)
	}
	return nil
}
