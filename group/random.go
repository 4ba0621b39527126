package group

import (
	"crypto/rand"
	"io"

	"github.com/famoser/post-evoting-sub013/big"
	"github.com/famoser/post-evoting-sub013/internal/common"
)

// RandomSource produces uniformly random non-negative integers below a
// positive bound. Implementations must be cryptographically secure; the
// call may block, for instance on entropy starvation.
type RandomSource interface {
	RandomInt(bound *big.Int) (*big.Int, error)
}

// CryptoRandom draws from Reader, or from crypto/rand.Reader when Reader is nil.
type CryptoRandom struct {
	Reader io.Reader
}

func (c CryptoRandom) RandomInt(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, InvalidArgument("random bound must be positive, got %v", bound)
	}
	r := c.Reader
	if r == nil {
		r = rand.Reader
	}
	return big.RandInt(r, bound)
}

// FastRandom draws from an AES-CTR generator seeded once per process from crypto/rand.
type FastRandom struct{}

func (FastRandom) RandomInt(bound *big.Int) (*big.Int, error) {
	return common.FastRandomBigInt(bound)
}
