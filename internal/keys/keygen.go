package keys

import (
	"io"
	"math/big"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
)

// Generator derives key pairs using an injected randomness source.
type Generator struct {
	random io.Reader
}

// New returns a key Generator reading from random.
func New(random io.Reader) *Generator { return &Generator{random: random} }

// Generate samples a private key in [1, p-2] and computes its public key.
func (k *Generator) Generate(params domain.Parameters) (domain.KeyPair, error) {
	return Generate(k.random, params)
}

// Generate samples a private key in [1, p-2] and computes its public key.
func Generate(random io.Reader, params domain.Parameters) (domain.KeyPair, error) {
	if params.P == nil || params.G == nil {
		return domain.KeyPair{}, domain.Errorf("generate_keys", "%w: missing p or g", domain.ErrInvalidParameters)
	}
	a, err := crypto.RandomExponent(random, params.P)
	if err != nil {
		return domain.KeyPair{}, domain.Errorf("generate_keys", "sampling private key: %w", err)
	}
	return FromPrivate(params, a)
}

// FromPrivate derives the public key for a known private exponent a in [1, p-2].
func FromPrivate(params domain.Parameters, a *big.Int) (domain.KeyPair, error) {
	if params.P == nil || params.G == nil || a == nil {
		return domain.KeyPair{}, domain.Errorf("derive_keys", "%w: missing p, g or private key", domain.ErrInvalidParameters)
	}
	if a.Sign() <= 0 || a.Cmp(new(big.Int).Sub(params.P, big.NewInt(2))) > 0 {
		return domain.KeyPair{}, domain.Errorf("derive_keys", "%w: private key outside [1, p-2]", domain.ErrInvalidParameters)
	}
	return domain.KeyPair{
		Private: new(big.Int).Set(a),
		Public:  new(big.Int).Exp(params.G, a, params.P),
	}, nil
}
