// Package zkproof implements non-interactive zero-knowledge proofs of
// knowledge of preimages under group homomorphisms (Maurer proofs), made
// non-interactive with the Fiat-Shamir transformation.
//
// A relation is described by a PhiFunction mapping a vector of exponents to
// a vector of group elements. Given public values y = φ(x), a Prover shows
// knowledge of x:
//
//	k      random exponents, t = φ(k)   (PreCompute)
//	c    = H(y, t, context) mod q       (Prove)
//	z_i  = k_i - c·x_i mod q
//
// and a Verifier recomputes t'_j = φ(z)_j · y_j^c and accepts if
// H(y, t', context) mod q equals c.
//
// Pre-computed values hold the prover's randomness and may be used for a
// single proof only; revealing two responses for the same k reveals x.
package zkproof
