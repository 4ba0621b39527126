package zkproof

import (
	"encoding/json"

	"github.com/famoser/post-evoting-sub013/big"
	"github.com/famoser/post-evoting-sub013/cbor"
	"github.com/famoser/post-evoting-sub013/group"

	"github.com/go-errors/errors"
	"github.com/multiformats/go-multihash"
)

// Proof is a Fiat-Shamir challenge c together with the responses z.
type Proof struct {
	hashValue  *group.Exponent
	valuesList []*group.Exponent
}

// proofWire is the serialized form: the CBOR map {1: c, 2: [z...]} with
// big-endian byte strings, or the JSON object {"c": "..", "z": [".."]} with
// decimal strings.
type proofWire struct {
	C *big.Int   `cbor:"1,keyasint" json:"c"`
	Z []*big.Int `cbor:"2,keyasint" json:"z"`
}

// NewProof combines a challenge and responses of the same order into a proof.
func NewProof(hashValue *group.Exponent, valuesList []*group.Exponent) (*Proof, error) {
	if hashValue == nil || len(valuesList) == 0 {
		return nil, group.InvalidArgument("proof needs a hash value and at least one response")
	}
	for i, z := range valuesList {
		if z == nil {
			return nil, group.InvalidArgument("response %d is nil", i)
		}
		if !z.SameOrder(hashValue) {
			return nil, group.Mismatch("response %d of order %v, hash value of order %v", i, z.Q(), hashValue.Q())
		}
	}
	return &Proof{
		hashValue:  hashValue,
		valuesList: append([]*group.Exponent(nil), valuesList...),
	}, nil
}

// HashValue returns the challenge c.
func (p *Proof) HashValue() *group.Exponent { return p.hashValue }

// Values returns the responses z in order.
func (p *Proof) Values() []*group.Exponent {
	return append([]*group.Exponent(nil), p.valuesList...)
}

// Equal reports whether both proofs have equal challenges and responses.
func (p *Proof) Equal(other *Proof) bool {
	if p == nil || other == nil {
		return p == other
	}
	if !p.hashValue.Equal(other.hashValue) || len(p.valuesList) != len(other.valuesList) {
		return false
	}
	for i := range p.valuesList {
		if !p.valuesList[i].Equal(other.valuesList[i]) {
			return false
		}
	}
	return true
}

func (p *Proof) wire() *proofWire {
	w := &proofWire{C: p.hashValue.Value(), Z: make([]*big.Int, len(p.valuesList))}
	for i, z := range p.valuesList {
		w.Z[i] = z.Value()
	}
	return w
}

func (p *Proof) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.wire())
}

func (p *Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

// Fingerprint returns the base58 SHA2-256 multihash of the CBOR encoding,
// identifying the proof in logs.
func (p *Proof) Fingerprint() (string, error) {
	if p == nil || p.hashValue == nil {
		return "", group.InvalidArgument("incomplete proof has no fingerprint")
	}
	bts, err := p.MarshalCBOR()
	if err != nil {
		return "", err
	}
	mh, err := multihash.Sum(bts, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return mh.B58String(), nil
}

// ParseProof decodes a CBOR encoded proof whose exponents are of order q.
func ParseProof(q *big.Int, data []byte) (*Proof, error) {
	var w proofWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, errors.WrapPrefix(err, "failed to decode proof", 0)
	}
	return w.proof(q)
}

// ParseProofJSON decodes a JSON encoded proof whose exponents are of order q.
func ParseProofJSON(q *big.Int, data []byte) (*Proof, error) {
	var w proofWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.WrapPrefix(err, "failed to decode proof", 0)
	}
	return w.proof(q)
}

func (w *proofWire) proof(q *big.Int) (*Proof, error) {
	if w.C == nil {
		return nil, group.InvalidArgument("proof has no hash value")
	}
	c, err := group.NewExponent(q, w.C)
	if err != nil {
		return nil, err
	}
	z := make([]*group.Exponent, len(w.Z))
	for i, v := range w.Z {
		if v == nil {
			return nil, group.InvalidArgument("proof response %d is missing", i)
		}
		if z[i], err = group.NewExponent(c.Q(), v); err != nil {
			return nil, err
		}
	}
	return NewProof(c, z)
}
