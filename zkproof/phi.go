package zkproof

import (
	"github.com/famoser/post-evoting-sub013/group"
)

// PhiFunction is a homomorphism from vectors of exponents to vectors of group
// elements. Prover and Verifier work with any implementation.
type PhiFunction interface {
	Group() *group.Group
	BaseElements() []*group.Element
	NumInputs() int
	NumOutputs() int
	Evaluate(exponents []*group.Exponent) ([]*group.Element, error)
}

// Term is one factor bases[Base]^x[Exponent] of an output of a RulePhiFunction.
type Term struct {
	Base     int
	Exponent int
}

// RulePhiFunction computes output j as the product over rules[j] of
// bases[t.Base]^x[t.Exponent]. Every relation in this package is one.
type RulePhiFunction struct {
	grp       *group.Group
	numInputs int
	bases     []*group.Element
	rules     [][]Term

	tables []*group.FixedBase
}

// PhiOption configures a RulePhiFunction.
type PhiOption func(*RulePhiFunction) error

// WithFixedBaseTables precomputes an exponentiation table for every base.
// Worth it when the function is evaluated many times, for instance by a
// long-lived Verifier. A window of 0 selects group.DefaultWindowSize.
func WithFixedBaseTables(window uint) PhiOption {
	return func(phi *RulePhiFunction) error {
		phi.tables = make([]*group.FixedBase, len(phi.bases))
		for i, b := range phi.bases {
			fb, err := group.NewFixedBase(b, window)
			if err != nil {
				return err
			}
			phi.tables[i] = fb
		}
		return nil
	}
}

// NewPhiFunction builds the relation over numInputs exponents with one output
// per entry of rules.
func NewPhiFunction(grp *group.Group, numInputs int, bases []*group.Element, rules [][]Term, opts ...PhiOption) (*RulePhiFunction, error) {
	if grp == nil {
		return nil, group.InvalidArgument("group must not be nil")
	}
	if numInputs < 1 {
		return nil, group.InvalidArgument("phi function needs at least one input, got %d", numInputs)
	}
	if len(bases) == 0 {
		return nil, group.InvalidArgument("phi function needs at least one base element")
	}
	for i, b := range bases {
		if b == nil {
			return nil, group.InvalidArgument("base element %d is nil", i)
		}
		if !grp.Equal(b.Group()) {
			return nil, group.Mismatch("base element %d does not belong to %v", i, grp)
		}
	}
	if len(rules) == 0 {
		return nil, group.InvalidArgument("phi function needs at least one output")
	}
	for j, rule := range rules {
		if len(rule) == 0 {
			return nil, group.InvalidArgument("output %d has no terms", j)
		}
		for _, t := range rule {
			if t.Base < 0 || t.Base >= len(bases) || t.Exponent < 0 || t.Exponent >= numInputs {
				return nil, group.InvalidArgument("output %d refers to base %d, exponent %d", j, t.Base, t.Exponent)
			}
		}
	}

	phi := &RulePhiFunction{
		grp:       grp,
		numInputs: numInputs,
		bases:     append([]*group.Element(nil), bases...),
		rules:     make([][]Term, len(rules)),
	}
	for j, rule := range rules {
		phi.rules[j] = append([]Term(nil), rule...)
	}
	for _, opt := range opts {
		if err := opt(phi); err != nil {
			return nil, err
		}
	}
	return phi, nil
}

// NewExponentiationPhiFunction is φ(x) = (b_1^x, ..., b_n^x). With the single
// base g this is knowledge of a discrete logarithm; with several bases it
// shows that all public values share one exponent.
func NewExponentiationPhiFunction(grp *group.Group, bases []*group.Element, opts ...PhiOption) (*RulePhiFunction, error) {
	rules := make([][]Term, len(bases))
	for i := range bases {
		rules[i] = []Term{{Base: i, Exponent: 0}}
	}
	return NewPhiFunction(grp, 1, bases, rules, opts...)
}

// NewPlaintextEqualityPhiFunction relates two ElGamal encryptions of the same
// message under the keys h and h' (of equal length n), with randomness r and
// r'. φ(r, r') = (g^r, g^r', h_1^r·h'_1^-r', ..., h_n^r·h'_n^-r'), so the
// public values are (γ, γ', φ_1/φ'_1, ..., φ_n/φ'_n) of both ciphertexts.
func NewPlaintextEqualityPhiFunction(grp *group.Group, primaryKey, secondaryKey []*group.Element, opts ...PhiOption) (*RulePhiFunction, error) {
	if grp == nil {
		return nil, group.InvalidArgument("group must not be nil")
	}
	n := len(primaryKey)
	if n == 0 || n != len(secondaryKey) {
		return nil, group.InvalidArgument("public keys must be non-empty and of equal length, got %d and %d", n, len(secondaryKey))
	}

	// bases: g, h_1..h_n, h'_1^-1..h'_n^-1
	bases := make([]*group.Element, 0, 1+2*n)
	bases = append(bases, grp.Generator())
	bases = append(bases, primaryKey...)
	for i, h := range secondaryKey {
		if h == nil {
			return nil, group.InvalidArgument("secondary key element %d is nil", i)
		}
		bases = append(bases, h.Invert())
	}

	rules := make([][]Term, 2+n)
	rules[0] = []Term{{Base: 0, Exponent: 0}}
	rules[1] = []Term{{Base: 0, Exponent: 1}}
	for i := 0; i < n; i++ {
		rules[2+i] = []Term{{Base: 1 + i, Exponent: 0}, {Base: 1 + n + i, Exponent: 1}}
	}
	return NewPhiFunction(grp, 2, bases, rules, opts...)
}

// NewDecryptionPhiFunction is φ(x_1, ..., x_n) = (g^x_1, ..., g^x_n, γ^x_1, ..., γ^x_n):
// knowledge of the private keys x_i matching the public keys g^x_i, used to
// partially decrypt a ciphertext with first component γ.
func NewDecryptionPhiFunction(grp *group.Group, gamma *group.Element, numKeys int, opts ...PhiOption) (*RulePhiFunction, error) {
	if grp == nil {
		return nil, group.InvalidArgument("group must not be nil")
	}
	if numKeys < 1 {
		return nil, group.InvalidArgument("need at least one key, got %d", numKeys)
	}
	rules := make([][]Term, 2*numKeys)
	for i := 0; i < numKeys; i++ {
		rules[i] = []Term{{Base: 0, Exponent: i}}
		rules[numKeys+i] = []Term{{Base: 1, Exponent: i}}
	}
	return NewPhiFunction(grp, numKeys, []*group.Element{grp.Generator(), gamma}, rules, opts...)
}

func (phi *RulePhiFunction) Group() *group.Group { return phi.grp }

// BaseElements returns the bases in the order the rules refer to them.
func (phi *RulePhiFunction) BaseElements() []*group.Element {
	return append([]*group.Element(nil), phi.bases...)
}

func (phi *RulePhiFunction) NumInputs() int  { return phi.numInputs }
func (phi *RulePhiFunction) NumOutputs() int { return len(phi.rules) }

// Evaluate computes φ(exponents). The number of exponents must equal
// NumInputs and all must be exponents of the function's group.
func (phi *RulePhiFunction) Evaluate(exponents []*group.Exponent) ([]*group.Element, error) {
	if len(exponents) != phi.numInputs {
		return nil, group.InvalidArgument("phi function expects %d exponents, got %d", phi.numInputs, len(exponents))
	}
	for i, x := range exponents {
		if x == nil {
			return nil, group.InvalidArgument("exponent %d is nil", i)
		}
	}

	ret := make([]*group.Element, len(phi.rules))
	for j, rule := range phi.rules {
		acc := phi.grp.Identity()
		for _, t := range rule {
			factor, err := phi.exp(t.Base, exponents[t.Exponent])
			if err != nil {
				return nil, err
			}
			if acc, err = acc.Multiply(factor); err != nil {
				return nil, err
			}
		}
		ret[j] = acc
	}
	return ret, nil
}

func (phi *RulePhiFunction) exp(base int, x *group.Exponent) (*group.Element, error) {
	if phi.tables != nil {
		return phi.tables[base].Exponentiate(x)
	}
	return phi.bases[base].Exponentiate(x)
}
