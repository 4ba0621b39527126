// Package compress folds lists of exponents or group elements into shorter
// lists, so that proofs over relations with many components stay small.
package compress

import (
	"github.com/famoser/post-evoting-sub013/group"

	"github.com/go-errors/errors"
)

// ErrLengthMismatch is returned by Divide when both lists differ in length.
var ErrLengthMismatch = errors.New("lists differ in length")

// Exponents returns the sum modulo q of all exponents in list.
// All exponents must be reduced by the same q.
func Exponents(list []*group.Exponent) (*group.Exponent, error) {
	if len(list) == 0 {
		return nil, group.InvalidArgument("exponent list must not be empty")
	}
	if list[0] == nil {
		return nil, group.InvalidArgument("exponent list contains nil at 0")
	}
	acc := list[0]
	for i, x := range list[1:] {
		if x == nil {
			return nil, group.InvalidArgument("exponent list contains nil at %d", i+1)
		}
		var err error
		if acc, err = acc.Add(x); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// ExponentsWithCompressedFinal returns a list of n exponents: the first n-1
// of list unchanged, followed by the compression of the rest.
func ExponentsWithCompressedFinal(n int, list []*group.Exponent) ([]*group.Exponent, error) {
	if err := checkFinalLength(n, len(list)); err != nil {
		return nil, err
	}
	last, err := Exponents(list[n-1:])
	if err != nil {
		return nil, err
	}
	ret := make([]*group.Exponent, n)
	copy(ret, list[:n-1])
	ret[n-1] = last
	return ret, nil
}

// Elements returns the product of all elements in list. All elements must
// belong to the same group.
func Elements(list []*group.Element) (*group.Element, error) {
	if len(list) == 0 {
		return nil, group.InvalidArgument("element list must not be empty")
	}
	if list[0] == nil {
		return nil, group.InvalidArgument("element list contains nil at 0")
	}
	acc := list[0]
	for i, e := range list[1:] {
		if e == nil {
			return nil, group.InvalidArgument("element list contains nil at %d", i+1)
		}
		var err error
		if acc, err = acc.Multiply(e); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// ElementsWithCompressedFinal returns a list of n elements: the first n-1
// of list unchanged, followed by the product of the rest.
func ElementsWithCompressedFinal(n int, list []*group.Element) ([]*group.Element, error) {
	if err := checkFinalLength(n, len(list)); err != nil {
		return nil, err
	}
	last, err := Elements(list[n-1:])
	if err != nil {
		return nil, err
	}
	ret := make([]*group.Element, n)
	copy(ret, list[:n-1])
	ret[n-1] = last
	return ret, nil
}

// Divide returns list1[i] * list2[i]^-1 for every i. Both lists must have the
// same length and consist of elements of grp.
func Divide(list1, list2 []*group.Element, grp *group.Group) ([]*group.Element, error) {
	if list1 == nil || list2 == nil || grp == nil {
		return nil, group.InvalidArgument("lists and group must not be nil")
	}
	if len(list1) != len(list2) {
		return nil, errors.WrapPrefix(ErrLengthMismatch, "cannot divide", 0)
	}
	ret := make([]*group.Element, len(list1))
	for i := range list1 {
		a, b := list1[i], list2[i]
		if a == nil || b == nil {
			return nil, group.InvalidArgument("nil element at %d", i)
		}
		if !grp.Equal(a.Group()) || !grp.Equal(b.Group()) {
			return nil, group.Mismatch("element at %d does not belong to %v", i, grp)
		}
		q, err := a.Multiply(b.Invert())
		if err != nil {
			return nil, err
		}
		ret[i] = q
	}
	return ret, nil
}

func checkFinalLength(n, length int) error {
	if n < 1 || n > length {
		return group.InvalidArgument("cannot compress %d values into %d", length, n)
	}
	return nil
}
