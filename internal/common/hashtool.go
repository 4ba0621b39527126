package common

import (
	"crypto/sha256"

	"github.com/famoser/post-evoting-sub013/big"
)

// Sha256Concat computes the sha256 hash over the concatenation of the given
// byte slices, without separators or length prefixes.
func Sha256Concat(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// DecimalBytes returns the UTF-8 base 10 representation of x.
func DecimalBytes(x *big.Int) []byte {
	return x.Go().Append(nil, 10)
}

// IntFromDigest interprets a digest as an unsigned big-endian integer.
func IntFromDigest(digest []byte) *big.Int {
	return new(big.Int).SetBytes(digest)
}
