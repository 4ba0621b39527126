package common

import (
	"github.com/famoser/post-evoting-sub013/big"
)

// FastMod reduces modulo p. For moduli of the shape p = 2^b - c with a small
// c it folds the high bits instead of dividing; otherwise it falls back to
// big.Int.Mod. The zero value is unusable, call Set or NewFastMod first.
type FastMod struct {
	enabled bool
	p       big.Int
	c       big.Int
	b       uint
	mask    big.Int // (1 << b) - 1
}

// NewFastMod returns a reducer for the positive modulus p.
func NewFastMod(p *big.Int) *FastMod {
	var m FastMod
	m.Set(p)
	return &m
}

func (m *FastMod) Set(p *big.Int) {
	var pow, one big.Int
	one.SetUint64(1)
	m.p.Set(p)
	m.b = uint(p.BitLen())
	pow.Lsh(&one, m.b)
	m.c.Sub(&pow, &m.p)
	m.enabled = m.c.BitLen() < 60
	if m.enabled {
		m.mask.Sub(&pow, &one)
	}
}

// Mod sets ret to x mod p and returns ret. The result is always in [0, p).
func (m *FastMod) Mod(ret, x *big.Int) *big.Int {
	if !m.enabled || x.Sign() == -1 {
		return ret.Mod(x, &m.p)
	}
	if x.Cmp(&m.p) < 0 {
		return ret.Set(x)
	}

	// x = hi*2^b + lo = hi*c + lo (mod p)
	var hi, tmp big.Int
	cur := x
	folded := false
	for {
		hi.Rsh(cur, m.b)
		if hi.Sign() == 0 {
			break
		}
		folded = true
		ret.And(cur, &m.mask)
		tmp.Mul(&hi, &m.c)
		ret.Add(ret, &tmp)
		cur = ret
	}

	if !folded {
		return ret.Sub(x, &m.p)
	}
	if ret.Cmp(&m.p) >= 0 {
		ret.Sub(ret, &m.p)
	}
	return ret
}
