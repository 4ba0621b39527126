package zkproof

import (
	"github.com/famoser/post-evoting-sub013/big"
	"github.com/famoser/post-evoting-sub013/group"
	"github.com/famoser/post-evoting-sub013/internal/common"
)

// HashBuilder derives Fiat-Shamir challenges. The hashed message is the
// decimal representation of every public value, then of every commitment
// value, then the context data, concatenated without separators and hashed
// with SHA-256.
type HashBuilder struct{}

func NewHashBuilder() *HashBuilder {
	return &HashBuilder{}
}

// BuildHashForProofs returns the SHA-256 digest over the public values,
// commitment values and context data. Both lists may be empty but not nil.
func (hb *HashBuilder) BuildHashForProofs(publicValues, commitmentValues []*group.Element, contextData string) ([]byte, error) {
	if publicValues == nil || commitmentValues == nil {
		return nil, group.InvalidArgument("public and commitment values must not be nil")
	}
	parts := make([][]byte, 0, len(publicValues)+len(commitmentValues)+1)
	for _, list := range [][]*group.Element{publicValues, commitmentValues} {
		for i, e := range list {
			if e == nil {
				return nil, group.InvalidArgument("nil element at %d", i)
			}
			parts = append(parts, common.DecimalBytes(e.Value()))
		}
	}
	parts = append(parts, []byte(contextData))
	return common.Sha256Concat(parts...), nil
}

// GenerateHash returns the digest of BuildHashForProofs, read as an unsigned
// big-endian integer, as an exponent modulo q.
func (hb *HashBuilder) GenerateHash(q *big.Int, publicValues, commitmentValues []*group.Element, contextData string) (*group.Exponent, error) {
	if q == nil || q.Cmp(big.NewInt(1)) <= 0 {
		return nil, group.InvalidArgument("hash modulus q=%v must be greater than 1", q)
	}
	digest, err := hb.BuildHashForProofs(publicValues, commitmentValues, contextData)
	if err != nil {
		return nil, err
	}
	c := common.IntFromDigest(digest)
	return group.NewExponent(q, c.Mod(c, q))
}

// challenge is GenerateHash for the order of grp, sharing its q.
func (hb *HashBuilder) challenge(grp *group.Group, publicValues, commitmentValues []*group.Element, contextData string) (*group.Exponent, error) {
	digest, err := hb.BuildHashForProofs(publicValues, commitmentValues, contextData)
	if err != nil {
		return nil, err
	}
	return grp.ReduceExponent(common.IntFromDigest(digest))
}
