package domain

import (
	"math/big"
	"time"

	"elgamal/internal/util/memzero"
)

// Parameters are the public domain parameters of the group Z_p*.
//
// P is prime and 1 < G < P. Q is the prime order of the subgroup generated by
// G when known (safe-prime subgroup mode); otherwise it is nil and G generates
// the full multiplicative group. Parameters are treated as immutable once built.
type Parameters struct {
	P *big.Int
	G *big.Int
	Q *big.Int
}

// PMinusOne returns a fresh copy of p-1.
func (p Parameters) PMinusOne() *big.Int {
	return new(big.Int).Sub(p.P, big.NewInt(1))
}

// BitLen reports the bit length of P.
func (p Parameters) BitLen() int {
	if p.P == nil {
		return 0
	}
	return p.P.BitLen()
}

// KeyPair holds a private exponent in [1, p-2] and Public = G^Private mod P.
type KeyPair struct {
	Private *big.Int
	Public  *big.Int
}

// Wipe zeroes the private exponent in place.
func (k *KeyPair) Wipe() {
	memzero.ZeroInt(k.Private)
	k.Private = nil
}

// Ciphertext is the per-message pair (x, y) = (g^k, pub^k * m) mod p.
type Ciphertext struct {
	X *big.Int
	Y *big.Int
}

// Signature shares the shape of Ciphertext but is a claim to be verified.
type Signature struct {
	X *big.Int
	Y *big.Int
}

// Report is the outcome of one end-to-end run for a single bit length.
// It carries public values only; the private key never leaves the run.
type Report struct {
	ID                      string
	Bits                    int
	Digest                  string
	Params                  Parameters
	PublicKey               *big.Int
	PublicKeyFingerprint    string
	Ciphertext              Ciphertext
	Decrypted               []byte
	DigestMatches           bool
	Signature               Signature
	SignatureValid          bool
	CorruptedSignatureValid bool
	LegacyVerified          bool
	LegacyCorruptedVerified bool
	Elapsed                 time.Duration
	CreatedUTC              int64
}
