// Package group builds ElGamal domain parameters (p, g).
//
// FindGenerator certifies a generator of the full group Z_p* by checking
// g^((p-1)/f) != 1 (mod p) for every prime factor f of p-1.
// FindSubgroupGenerator picks a generator of the prime-order subgroup of
// quadratic residues of a safe prime. Builder composes prime and generator
// search into domain.Parameters; Validate re-checks parameters from elsewhere.
package group
