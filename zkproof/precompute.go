package zkproof

import (
	"sync/atomic"

	"github.com/famoser/post-evoting-sub013/group"
)

// PreComputedValues holds the random exponents k of one proof attempt and
// their commitments t = φ(k). They are consumed by the first Prove call they
// are passed to; the randomness is dropped at that point and any further
// Prove call with the same values fails with ErrPreComputedValuesConsumed.
// Values are bound to the Prover that computed them and are rejected, without
// being consumed, by any other Prover.
type PreComputedValues struct {
	origin      *Prover
	consumed    atomic.Bool
	randomness  []*group.Exponent
	commitments []*group.Element
}

// Commitments returns t = φ(k).
func (pre *PreComputedValues) Commitments() []*group.Element {
	return append([]*group.Element(nil), pre.commitments...)
}

// Consumed reports whether the values were used for a proof already.
func (pre *PreComputedValues) Consumed() bool {
	return pre.consumed.Load()
}

// checkOrigin runs before take so that values handed to the wrong Prover
// remain usable with their own.
func (pre *PreComputedValues) checkOrigin(p *Prover) error {
	if pre.origin == p {
		return nil
	}
	if pre.origin == nil {
		return group.InvalidArgument("pre-computed values were not created by a prover")
	}
	if !pre.origin.grp.Equal(p.grp) {
		return group.Mismatch("pre-computed values over %v used in %v", pre.origin.grp, p.grp)
	}
	return group.InvalidArgument("pre-computed values were created by a different prover")
}

func (pre *PreComputedValues) take() ([]*group.Exponent, []*group.Element, error) {
	if !pre.consumed.CompareAndSwap(false, true) {
		return nil, nil, ErrPreComputedValuesConsumed
	}
	k, t := pre.randomness, pre.commitments
	pre.randomness = nil
	return k, t, nil
}
