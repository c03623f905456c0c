package signature

import (
	"io"
	"math/big"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
)

// maxNonceAttempts bounds the search for an ephemeral exponent coprime to p-1.
const maxNonceAttempts = 256

var one = big.NewInt(1)

// Signer implements domain.Signer over an injected randomness source.
type Signer struct {
	random io.Reader
}

// New returns a Signer reading ephemeral exponents from random.
func New(random io.Reader) *Signer { return &Signer{random: random} }

func (s *Signer) Sign(params domain.Parameters, kp domain.KeyPair, digest *big.Int) (domain.Signature, error) {
	return Sign(s.random, params, kp, digest)
}

func (s *Signer) Verify(params domain.Parameters, verifyingKey, digest *big.Int, sig domain.Signature) bool {
	return Verify(params, verifyingKey, digest, sig)
}

// Sign produces (x, y) with x = g^k mod p and y = (H - a*x) * k^-1 mod (p-1)
// for a fresh k coprime to p-1.
func Sign(random io.Reader, params domain.Parameters, kp domain.KeyPair, digest *big.Int) (domain.Signature, error) {
	const op = "sign"
	if err := checkParams(params); err != nil {
		return domain.Signature{}, domain.Errorf(op, "%w", err)
	}
	if kp.Private == nil || digest == nil || kp.Private.Sign() <= 0 || digest.Sign() < 0 {
		return domain.Signature{}, domain.Errorf(op, "%w: missing private key or digest", domain.ErrInvalidParameters)
	}
	order := params.PMinusOne()
	gcd := new(big.Int)
	for attempt := 0; attempt < maxNonceAttempts; attempt++ {
		k, err := crypto.RandomExponent(random, params.P)
		if err != nil {
			return domain.Signature{}, domain.Errorf(op, "sampling nonce: %w", err)
		}
		if gcd.GCD(nil, nil, k, order).Cmp(one) != 0 {
			continue
		}
		sig, ok := signWithNonce(params, kp.Private, digest, k)
		if ok {
			return sig, nil
		}
	}
	return domain.Signature{}, domain.Errorf(op, "%w: no usable nonce after %d attempts",
		domain.ErrInvalidParameters, maxNonceAttempts)
}

// SignWithNonce signs with a caller-chosen k. k must be coprime to p-1.
// Reusing k across two digests reveals the private key.
func SignWithNonce(params domain.Parameters, private, digest, k *big.Int) (domain.Signature, error) {
	const op = "sign"
	if err := checkParams(params); err != nil {
		return domain.Signature{}, domain.Errorf(op, "%w", err)
	}
	if private == nil || digest == nil || k == nil || private.Sign() <= 0 || digest.Sign() < 0 || k.Sign() <= 0 {
		return domain.Signature{}, domain.Errorf(op, "%w: missing private key, digest or nonce", domain.ErrInvalidParameters)
	}
	sig, ok := signWithNonce(params, private, digest, k)
	if !ok {
		return domain.Signature{}, domain.Errorf(op, "%w: nonce not invertible or y = 0", domain.ErrInvalidParameters)
	}
	return sig, nil
}

func signWithNonce(params domain.Parameters, a, h, k *big.Int) (domain.Signature, bool) {
	order := params.PMinusOne()
	kInv := new(big.Int).ModInverse(k, order)
	if kInv == nil {
		return domain.Signature{}, false
	}
	x := new(big.Int).Exp(params.G, k, params.P)

	y := new(big.Int).Mul(a, x)
	y.Sub(h, y)
	y.Mul(y, kInv)
	y.Mod(y, order)
	if y.Sign() == 0 {
		return domain.Signature{}, false
	}
	return domain.Signature{X: x, Y: y}, true
}

func checkParams(params domain.Parameters) error {
	if params.P == nil || params.G == nil || params.P.Cmp(big.NewInt(3)) < 0 {
		return domain.ErrInvalidParameters
	}
	return nil
}
