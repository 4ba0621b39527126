// Package group implements the algebra the proof engine works in: a subgroup
// of prime order q of the multiplicative group Z_p^*, generated by g.
//
// All values are immutable. Every Element keeps a handle to the Group it was
// created in and every Exponent keeps a handle to the order q it is reduced
// by, so that values of different groups are never combined silently.
package group

import (
	"fmt"

	"github.com/famoser/post-evoting-sub013/big"
	"github.com/famoser/post-evoting-sub013/internal/common"

	"github.com/go-errors/errors"
)

// Group is the subgroup of order Q of Z_P^*, generated by G.
// A Group is immutable and safe for concurrent use.
type Group struct {
	p, q, g *big.Int

	pMod *common.FastMod
	qMod *common.FastMod

	identity  *Element
	generator *Element
}

// NewGroup builds the group (p, q, g). It checks the structural invariants
// 1 < g < p, 1 < q < p and g^q = 1 (mod p). Primality of p and q is a
// property of the configuration and is not checked here.
func NewGroup(p, q, g *big.Int) (*Group, error) {
	if p == nil || q == nil || g == nil {
		return nil, InvalidArgument("group parameters must not be nil")
	}
	one := big.NewInt(1)
	if p.Cmp(big.NewInt(3)) < 0 {
		return nil, InvalidArgument("modulus p=%v too small", p)
	}
	if q.Cmp(one) <= 0 || q.Cmp(p) >= 0 {
		return nil, InvalidArgument("order q=%v not in (1, p)", q)
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return nil, InvalidArgument("generator g=%v not in (1, p)", g)
	}
	if new(big.Int).Exp(g, q, p).Cmp(one) != 0 {
		return nil, InvalidArgument("generator g=%v does not satisfy g^q = 1 mod p", g)
	}

	grp := &Group{
		p:    new(big.Int).Set(p),
		q:    new(big.Int).Set(q),
		g:    new(big.Int).Set(g),
		pMod: common.NewFastMod(p),
		qMod: common.NewFastMod(q),
	}
	grp.identity = &Element{value: big.NewInt(1), group: grp}
	grp.generator = &Element{value: grp.g, group: grp}
	return grp, nil
}

// NewGroupFromParams builds the group described by the configuration params.
func NewGroupFromParams(params *Params) (*Group, error) {
	if params == nil {
		return nil, InvalidArgument("group parameters must not be nil")
	}
	return NewGroup(params.P, params.Q, params.G)
}

// P returns a copy of the modulus.
func (grp *Group) P() *big.Int { return new(big.Int).Set(grp.p) }

// Q returns a copy of the group order.
func (grp *Group) Q() *big.Int { return new(big.Int).Set(grp.q) }

// G returns a copy of the generator value.
func (grp *Group) G() *big.Int { return new(big.Int).Set(grp.g) }

// Identity returns the neutral element 1.
func (grp *Group) Identity() *Element { return grp.identity }

// Generator returns g as an element of the group.
func (grp *Group) Generator() *Element { return grp.generator }

// Params returns the configuration describing this group.
func (grp *Group) Params() *Params {
	return &Params{P: grp.P(), Q: grp.Q(), G: grp.G()}
}

// IsMember reports whether 1 <= value <= p-1 and value^q = 1 (mod p).
func (grp *Group) IsMember(value *big.Int) bool {
	if value == nil || value.Sign() <= 0 || value.Cmp(grp.p) >= 0 {
		return false
	}
	return new(big.Int).Exp(value, grp.q, grp.p).Cmp(bigOne) == 0
}

// Equal reports whether both groups have the same (p, q, g).
func (grp *Group) Equal(other *Group) bool {
	if grp == other {
		return true
	}
	if grp == nil || other == nil {
		return false
	}
	return grp.p.Cmp(other.p) == 0 && grp.q.Cmp(other.q) == 0 && grp.g.Cmp(other.g) == 0
}

func (grp *Group) String() string {
	return fmt.Sprintf("Group(p=%v, q=%v, g=%v)", grp.p, grp.q, grp.g)
}

// NewElement validates that value is a member of the group and wraps it.
func (grp *Group) NewElement(value *big.Int) (*Element, error) {
	if value == nil {
		return nil, InvalidArgument("element value must not be nil")
	}
	if value.Sign() <= 0 || value.Cmp(grp.p) >= 0 {
		return nil, InvalidArgument("element value %v not in [1, p-1]", value)
	}
	if !grp.IsMember(value) {
		return nil, errors.WrapPrefix(ErrNotMember, fmt.Sprintf("%v", value), 0)
	}
	return &Element{value: new(big.Int).Set(value), group: grp}, nil
}

// NewExponent validates that 0 <= value < q and wraps it as an exponent of this group.
func (grp *Group) NewExponent(value *big.Int) (*Exponent, error) {
	return newExponent(grp.q, value)
}

// ReduceExponent returns value mod q as an exponent of this group. Negative
// values are reduced to their non-negative representative.
func (grp *Group) ReduceExponent(value *big.Int) (*Exponent, error) {
	if value == nil {
		return nil, InvalidArgument("exponent value must not be nil")
	}
	v := new(big.Int)
	grp.qMod.Mod(v, value)
	return &Exponent{value: v, q: grp.q}, nil
}

// RandomExponent draws an exponent uniformly from [0, q) using src.
func (grp *Group) RandomExponent(src RandomSource) (*Exponent, error) {
	if src == nil {
		return nil, InvalidArgument("random source must not be nil")
	}
	value, err := src.RandomInt(grp.Q())
	if err != nil {
		return nil, err
	}
	if value == nil || value.Sign() < 0 || value.Cmp(grp.q) >= 0 {
		return nil, InvalidArgument("random source returned %v outside of [0, q)", value)
	}
	return &Exponent{value: value, q: grp.q}, nil
}

// hasOrder reports whether exponents reduced by q can be used in this group.
func (grp *Group) hasOrder(q *big.Int) bool {
	return grp.q == q || grp.q.Cmp(q) == 0
}

var bigOne = big.NewInt(1)
