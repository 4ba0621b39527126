package group

import (
	"fmt"

	"github.com/famoser/post-evoting-sub013/big"
)

// Exponent is a value in [0, q), tagged with the order q it belongs to.
// All arithmetic happens modulo that q; combining exponents of different
// orders fails with ErrGroupMismatch.
type Exponent struct {
	value *big.Int
	q     *big.Int
}

// NewExponent validates that q > 1 and 0 <= value < q.
//
// Exponents created through a Group share that group's q, which makes the
// order check between them a pointer comparison.
func NewExponent(q, value *big.Int) (*Exponent, error) {
	if q == nil || q.Cmp(bigOne) <= 0 {
		return nil, InvalidArgument("exponent order q=%v must be greater than 1", q)
	}
	return newExponent(new(big.Int).Set(q), value)
}

func newExponent(q, value *big.Int) (*Exponent, error) {
	if value == nil {
		return nil, InvalidArgument("exponent value must not be nil")
	}
	if value.Sign() < 0 || value.Cmp(q) >= 0 {
		return nil, InvalidArgument("exponent value %v not in [0, q)", value)
	}
	return &Exponent{value: new(big.Int).Set(value), q: q}, nil
}

// Value returns a copy of the exponent value.
func (e *Exponent) Value() *big.Int { return new(big.Int).Set(e.value) }

// Q returns a copy of the order this exponent is reduced by.
func (e *Exponent) Q() *big.Int { return new(big.Int).Set(e.q) }

// SameOrder reports whether e and other are reduced by the same q.
func (e *Exponent) SameOrder(other *Exponent) bool {
	return e.q == other.q || e.q.Cmp(other.q) == 0
}

func (e *Exponent) check(other *Exponent) error {
	if other == nil {
		return InvalidArgument("exponent must not be nil")
	}
	if !e.SameOrder(other) {
		return Mismatch("exponents of order %v and %v", e.q, other.q)
	}
	return nil
}

func (e *Exponent) reduced(v *big.Int) *Exponent {
	return &Exponent{value: v.Mod(v, e.q), q: e.q}
}

// Add returns (e + other) mod q.
func (e *Exponent) Add(other *Exponent) (*Exponent, error) {
	if err := e.check(other); err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Add(e.value, other.value)), nil
}

// Subtract returns (e - other) mod q, which is never negative.
func (e *Exponent) Subtract(other *Exponent) (*Exponent, error) {
	if err := e.check(other); err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Sub(e.value, other.value)), nil
}

// Multiply returns (e * other) mod q.
func (e *Exponent) Multiply(other *Exponent) (*Exponent, error) {
	if err := e.check(other); err != nil {
		return nil, err
	}
	return e.reduced(new(big.Int).Mul(e.value, other.value)), nil
}

// Negate returns -e mod q.
func (e *Exponent) Negate() *Exponent {
	return e.reduced(new(big.Int).Neg(e.value))
}

// Equal reports whether both exponents have the same value and the same order.
func (e *Exponent) Equal(other *Exponent) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return e.SameOrder(other) && e.value.Cmp(other.value) == 0
}

func (e *Exponent) String() string {
	return fmt.Sprintf("Exponent(%v mod %v)", e.value, e.q)
}
