package zkproof

import (
	"github.com/famoser/post-evoting-sub013/group"

	"github.com/sirupsen/logrus"
)

// Prover creates proofs of knowledge of a preimage under phi.
// A Prover is stateless and safe for concurrent use.
type Prover struct {
	grp *group.Group
	phi PhiFunction
	hb  *HashBuilder
}

func NewProver(grp *group.Group, phi PhiFunction, hb *HashBuilder) (*Prover, error) {
	if err := checkSetup(grp, phi, hb); err != nil {
		return nil, err
	}
	return &Prover{grp: grp, phi: phi, hb: hb}, nil
}

func checkSetup(grp *group.Group, phi PhiFunction, hb *HashBuilder) error {
	if grp == nil || phi == nil || hb == nil {
		return group.InvalidArgument("group, phi function and hash builder must not be nil")
	}
	if !grp.Equal(phi.Group()) {
		return group.Mismatch("phi function over %v used with %v", phi.Group(), grp)
	}
	return nil
}

// PreCompute draws one random exponent per input of phi from src and computes
// the commitments. This is the only call that may block, on src.
func (p *Prover) PreCompute(src group.RandomSource) (*PreComputedValues, error) {
	k := make([]*group.Exponent, p.phi.NumInputs())
	for i := range k {
		var err error
		if k[i], err = p.grp.RandomExponent(src); err != nil {
			return nil, err
		}
	}
	t, err := p.phi.Evaluate(k)
	if err != nil {
		return nil, err
	}
	Logger.Tracef("precomputed %d commitments", len(t))
	return &PreComputedValues{origin: p, randomness: k, commitments: t}, nil
}

// Prove proves knowledge of privateValues such that φ(privateValues) =
// publicValues, bound to contextData. It consumes pre.
func (p *Prover) Prove(publicValues []*group.Element, privateValues []*group.Exponent, contextData string, pre *PreComputedValues) (*Proof, error) {
	if err := checkPublicValues(p.grp, p.phi, publicValues); err != nil {
		return nil, err
	}
	if len(privateValues) != p.phi.NumInputs() {
		return nil, group.InvalidArgument("expected %d private values, got %d", p.phi.NumInputs(), len(privateValues))
	}
	for i, x := range privateValues {
		if x == nil {
			return nil, group.InvalidArgument("private value %d is nil", i)
		}
		if x.Q().Cmp(p.grp.Q()) != 0 {
			return nil, group.Mismatch("private value %d of order %v used in %v", i, x.Q(), p.grp)
		}
	}
	if pre == nil {
		return nil, group.InvalidArgument("pre-computed values must not be nil")
	}
	if err := pre.checkOrigin(p); err != nil {
		return nil, err
	}

	k, t, err := pre.take()
	if err != nil {
		return nil, err
	}

	c, err := p.hb.challenge(p.grp, publicValues, t, contextData)
	if err != nil {
		return nil, err
	}
	z := make([]*group.Exponent, len(k))
	for i := range k {
		cx, err := c.Multiply(privateValues[i])
		if err != nil {
			return nil, err
		}
		if z[i], err = k[i].Subtract(cx); err != nil {
			return nil, err
		}
	}

	proof, err := NewProof(c, z)
	if err != nil {
		return nil, err
	}
	if Logger.IsLevelEnabled(logrus.DebugLevel) {
		proofLogEntry(proof).Debug("generated proof")
	}
	return proof, nil
}

// ProveWithRandomness pre-computes with src and proves in one step.
func (p *Prover) ProveWithRandomness(publicValues []*group.Element, privateValues []*group.Exponent, contextData string, src group.RandomSource) (*Proof, error) {
	pre, err := p.PreCompute(src)
	if err != nil {
		return nil, err
	}
	return p.Prove(publicValues, privateValues, contextData, pre)
}

func checkPublicValues(grp *group.Group, phi PhiFunction, publicValues []*group.Element) error {
	if len(publicValues) == 0 {
		return group.InvalidArgument("public values must not be empty")
	}
	if len(publicValues) != phi.NumOutputs() {
		return group.InvalidArgument("expected %d public values, got %d", phi.NumOutputs(), len(publicValues))
	}
	for i, y := range publicValues {
		if y == nil {
			return group.InvalidArgument("public value %d is nil", i)
		}
		if !grp.Equal(y.Group()) {
			return group.Mismatch("public value %d does not belong to %v", i, grp)
		}
	}
	return nil
}
