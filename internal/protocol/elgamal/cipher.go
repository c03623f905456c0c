package elgamal

import (
	"io"
	"math/big"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
)

var two = big.NewInt(2)

// Engine encrypts message digests under ElGamal.
type Engine struct {
	random io.Reader
	digest crypto.Digest
}

// New returns an Engine that samples ephemeral exponents from random and
// encodes messages with digest.
func New(random io.Reader, digest crypto.Digest) *Engine {
	if digest == nil {
		digest = crypto.SHA256
	}
	return &Engine{random: random, digest: digest}
}

// Digest returns the digest the engine encrypts.
func (e *Engine) Digest() crypto.Digest { return e.digest }

// Encrypt encrypts the digest of message under public.
func (e *Engine) Encrypt(params domain.Parameters, public *big.Int, message []byte) (domain.Ciphertext, error) {
	const op = "encrypt"
	if err := checkParams(params); err != nil {
		return domain.Ciphertext{}, domain.Errorf(op, "%w", err)
	}
	m := crypto.DigestInt(e.digest, message)
	if m.Cmp(params.P) >= 0 {
		return domain.Ciphertext{}, domain.Errorf(op, "%w: %d-bit %s digest, %d-bit modulus",
			domain.ErrDigestTooLarge, m.BitLen(), e.digest.Name(), params.BitLen())
	}
	k, err := crypto.RandomExponent(e.random, params.P)
	if err != nil {
		return domain.Ciphertext{}, domain.Errorf(op, "sampling ephemeral exponent: %w", err)
	}
	return EncryptElement(params, public, m, k)
}

// EncryptElement encrypts the group element m with the ephemeral exponent k.
func EncryptElement(params domain.Parameters, public, m, k *big.Int) (domain.Ciphertext, error) {
	const op = "encrypt"
	if err := checkParams(params); err != nil {
		return domain.Ciphertext{}, domain.Errorf(op, "%w", err)
	}
	if public == nil || m == nil || k == nil || public.Sign() <= 0 || k.Sign() <= 0 ||
		m.Sign() < 0 || m.Cmp(params.P) >= 0 {
		return domain.Ciphertext{}, domain.Errorf(op, "%w: element or key out of range", domain.ErrInvalidParameters)
	}
	p := params.P
	x := new(big.Int).Exp(params.G, k, p)
	y := new(big.Int).Exp(public, k, p)
	y.Mul(y, m)
	y.Mod(y, p)
	return domain.Ciphertext{X: x, Y: y}, nil
}

// Decrypt recovers the digest bytes, big-endian and left-padded to the
// digest width. Values wider than the digest are returned unpadded.
func (e *Engine) Decrypt(params domain.Parameters, private *big.Int, ct domain.Ciphertext) ([]byte, error) {
	m, err := DecryptElement(params, private, ct)
	if err != nil {
		return nil, err
	}
	out := m.Bytes()
	if size := e.digest.Size(); len(out) < size {
		out = m.FillBytes(make([]byte, size))
	}
	return out, nil
}

// DecryptElement recovers m = y * (x^private)^-1 mod p.
func DecryptElement(params domain.Parameters, private *big.Int, ct domain.Ciphertext) (*big.Int, error) {
	const op = "decrypt"
	if err := checkParams(params); err != nil {
		return nil, domain.Errorf(op, "%w", err)
	}
	if private == nil || private.Sign() <= 0 {
		return nil, domain.Errorf(op, "%w: missing or non-positive private key", domain.ErrInvalidParameters)
	}
	if ct.X == nil || ct.Y == nil || ct.X.Sign() < 0 || ct.Y.Sign() < 0 {
		return nil, domain.Errorf(op, "%w: missing or negative component", domain.ErrInvalidCiphertext)
	}
	p := params.P
	s := new(big.Int).Exp(ct.X, private, p)
	if s.Sign() == 0 {
		return nil, domain.Errorf(op, "%w: shared secret is zero", domain.ErrInvalidCiphertext)
	}
	sInv := SharedSecretInverse(s, p)
	m := sInv.Mul(sInv, ct.Y)
	return m.Mod(m, p), nil
}

// SharedSecretInverse returns s^(p-2) mod p, the inverse of s != 0 modulo the prime p.
func SharedSecretInverse(s, p *big.Int) *big.Int {
	return new(big.Int).Exp(s, new(big.Int).Sub(p, two), p)
}

func checkParams(params domain.Parameters) error {
	if params.P == nil || params.G == nil || params.P.Cmp(two) <= 0 {
		return domain.ErrInvalidParameters
	}
	return nil
}
