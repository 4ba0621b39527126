package group

import (
	"context"

	"github.com/famoser/post-evoting-sub013/big"
	"github.com/famoser/post-evoting-sub013/safeprime"
)

// GenerateParams generates parameters of a new group: a safe prime p = 2q+1
// of the given bit size, the order q and the generator g = 4 of the
// subgroup of quadratic residues.
func GenerateParams(ctx context.Context, bits int) (*Params, error) {
	p, err := safeprime.Generate(ctx, bits)
	if err != nil {
		return nil, err
	}
	return &Params{
		P: p,
		Q: new(big.Int).Rsh(p, 1),
		G: big.NewInt(4),
	}, nil
}
