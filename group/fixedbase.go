package group

import (
	"github.com/bwesterb/go-exptable"

	"github.com/famoser/post-evoting-sub013/big"
)

// DefaultWindowSize is the exptable window size used when none is given.
const DefaultWindowSize = 7

// FixedBase is an element together with a precomputed exponentiation table,
// for bases that are raised to many different exponents.
// It is immutable after construction and safe for concurrent use.
type FixedBase struct {
	base  *Element
	table exptable.Table
}

// NewFixedBase precomputes the exponentiation table of e. A windowSize of 0
// selects DefaultWindowSize.
func NewFixedBase(e *Element, windowSize uint) (*FixedBase, error) {
	if e == nil {
		return nil, InvalidArgument("base element must not be nil")
	}
	if windowSize == 0 {
		windowSize = DefaultWindowSize
	}
	fb := &FixedBase{base: e}
	fb.table.Compute(e.value.Go(), e.group.p.Go(), windowSize)
	return fb, nil
}

// Element returns the base element.
func (fb *FixedBase) Element() *Element { return fb.base }

// Exponentiate returns base^x mod p. The result equals fb.Element().Exponentiate(x).
func (fb *FixedBase) Exponentiate(x *Exponent) (*Element, error) {
	if x == nil {
		return nil, InvalidArgument("exponent must not be nil")
	}
	grp := fb.base.group
	if !grp.hasOrder(x.q) {
		return nil, Mismatch("exponent of order %v used in %v", x.q, grp)
	}
	if x.value.Sign() == 0 {
		return grp.identity, nil
	}
	ret := new(big.Int)
	fb.table.Exp(ret.Go(), x.value.Go())
	return &Element{value: ret, group: grp}, nil
}
