package zkproof

import (
	"github.com/famoser/post-evoting-sub013/group"

	"github.com/sirupsen/logrus"
)

// Verifier checks proofs created by a Prover with the same group, phi
// function and hash builder. It is stateless and safe for concurrent use.
type Verifier struct {
	grp *group.Group
	phi PhiFunction
	hb  *HashBuilder
}

func NewVerifier(grp *group.Group, phi PhiFunction, hb *HashBuilder) (*Verifier, error) {
	if err := checkSetup(grp, phi, hb); err != nil {
		return nil, err
	}
	return &Verifier{grp: grp, phi: phi, hb: hb}, nil
}

// Verify reports whether proof shows knowledge of a preimage of publicValues,
// bound to contextData. An invalid proof yields false and no error; an error
// means the arguments could not be verified at all, for instance because the
// proof's exponents are of a different order than the group.
func (v *Verifier) Verify(publicValues []*group.Element, proof *Proof, contextData string) (bool, error) {
	if err := checkPublicValues(v.grp, v.phi, publicValues); err != nil {
		return false, err
	}
	if proof == nil || proof.hashValue == nil {
		return false, group.InvalidArgument("proof must not be nil")
	}
	c, z := proof.hashValue, proof.valuesList
	if c.Q().Cmp(v.grp.Q()) != 0 {
		return false, group.Mismatch("proof of order %v verified in %v", c.Q(), v.grp)
	}
	if len(z) != v.phi.NumInputs() {
		return false, group.InvalidArgument("expected %d responses, got %d", v.phi.NumInputs(), len(z))
	}

	// t'_j = φ(z)_j · y_j^c
	t, err := v.phi.Evaluate(z)
	if err != nil {
		return false, err
	}
	for j, y := range publicValues {
		yc, err := y.Exponentiate(c)
		if err != nil {
			return false, err
		}
		if t[j], err = t[j].Multiply(yc); err != nil {
			return false, err
		}
	}

	c2, err := v.hb.challenge(v.grp, publicValues, t, contextData)
	if err != nil {
		return false, err
	}
	ok := c2.Equal(c)
	if Logger.IsLevelEnabled(logrus.DebugLevel) {
		proofLogEntry(proof).WithField("valid", ok).Debug("verified proof")
	}
	return ok, nil
}
