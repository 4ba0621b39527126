// Package safeprime computes safe primes, i.e. primes of the form 2q+1 where q is also prime.
package safeprime

import (
	"context"
	"crypto/rand"

	"github.com/famoser/post-evoting-sub013/big"

	"github.com/go-errors/errors"
)

// Generate a safe prime of the given size, using the fact that:
//     If q is prime and 2^(2q) = 1 mod (2q+1), then 2q+1 is a safe prime.
// We take a random bigint q; if the above formula holds and q is prime, then we return 2q+1.
// (See https://www.ijipbangalore.org/abstracts_2(1)/p5.pdf and
// https://groups.google.com/group/sci.crypt/msg/34c4abf63568a8eb)
//
// Generation stops with ctx.Err() when ctx is done.
func Generate(ctx context.Context, bitsize int) (*big.Int, error) {
	if bitsize < 3 {
		return nil, errors.Errorf("cannot generate safe prime of %d bits", bitsize)
	}
	var (
		max        = new(big.Int).Lsh(one, uint(bitsize-1)) // 2^(bitsize-1)
		twoq       = new(big.Int)
		twoqone    = new(big.Int)
		twoexptwoq = new(big.Int)
		q          *big.Int
		err        error
	)

	for i := 1; ; i++ {
		if i%1000 == 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}

		if q, err = big.RandInt(rand.Reader, max); err != nil {
			return nil, err
		}
		// q must be odd and of exactly bitsize-1 bits, so that 2q+1 has bitsize bits
		if q.Bit(0) != 1 || q.BitLen() != bitsize-1 {
			continue
		}

		twoq.Lsh(q, 1)
		twoqone.Add(twoq, one)
		twoexptwoq.Exp(two, twoq, twoqone) // 2^(2q) mod (2q+1)
		if twoexptwoq.Cmp(one) == 0 && q.ProbablyPrime(40) {
			break
		}
	}

	if !ProbablySafePrime(twoqone, 40) {
		return nil, errors.New("safeprime generation returned non-safeprime")
	}
	return twoqone, nil
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ProbablySafePrime reports whether x is probably safe prime, by calling big.Int.ProbablyPrime(n)
// on x as well as on (x-1)/2.
func ProbablySafePrime(x *big.Int, n int) bool {
	if x.Cmp(two) <= 0 {
		return false
	}
	if !x.ProbablyPrime(n) {
		return false
	}
	y := new(big.Int).Rsh(x, 1)
	return y.ProbablyPrime(n)
}
