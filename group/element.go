package group

import (
	"fmt"

	"github.com/famoser/post-evoting-sub013/big"
	"github.com/famoser/post-evoting-sub013/internal/common"
)

// Element is a member of a Group. Use Group.NewElement to create one.
type Element struct {
	value *big.Int
	group *Group
}

// Value returns a copy of the integer representative in [1, p-1].
func (e *Element) Value() *big.Int { return new(big.Int).Set(e.value) }

// Group returns the group this element belongs to.
func (e *Element) Group() *Group { return e.group }

// Multiply returns e * other mod p.
func (e *Element) Multiply(other *Element) (*Element, error) {
	if other == nil {
		return nil, InvalidArgument("element must not be nil")
	}
	if !e.group.Equal(other.group) {
		return nil, Mismatch("cannot multiply elements of %v and %v", e.group, other.group)
	}
	return e.group.element(new(big.Int).Mul(e.value, other.value)), nil
}

// Invert returns the multiplicative inverse of e mod p.
func (e *Element) Invert() *Element {
	inv, ok := common.ModInverse(e.value, e.group.p)
	if !ok {
		// Unreachable for members of the subgroup: e^(q-1) is always an inverse.
		inv = new(big.Int).Exp(e.value, new(big.Int).Sub(e.group.q, bigOne), e.group.p)
	}
	return &Element{value: inv, group: e.group}
}

// Exponentiate returns e^x mod p. The exponent must be reduced by the
// order of e's group.
func (e *Element) Exponentiate(x *Exponent) (*Element, error) {
	if x == nil {
		return nil, InvalidArgument("exponent must not be nil")
	}
	if !e.group.hasOrder(x.q) {
		return nil, Mismatch("exponent of order %v used in %v", x.q, e.group)
	}
	return &Element{value: new(big.Int).Exp(e.value, x.value, e.group.p), group: e.group}, nil
}

// Equal reports whether both elements have the same value in the same group.
func (e *Element) Equal(other *Element) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.group.Equal(other.group) && e.value.Cmp(other.value) == 0
}

func (e *Element) String() string {
	return fmt.Sprintf("Element(%v mod %v)", e.value, e.group.p)
}

// element reduces v mod p in place and wraps it without a membership check.
// Only for results of group operations on members.
func (grp *Group) element(v *big.Int) *Element {
	grp.pMod.Mod(v, v)
	return &Element{value: v, group: grp}
}
