package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"elgamal/internal/domain"
)

var one = big.NewInt(1)

// RandomInRange returns an integer drawn uniformly from [lo, hi].
func RandomInRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil || hi.Cmp(lo) < 0 {
		return nil, fmt.Errorf("%w: empty sampling range", domain.ErrInvalidParameters)
	}
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)
	r, err := rand.Int(random, span)
	if err != nil {
		return nil, err
	}
	return r.Add(r, lo), nil
}

// RandomExponent returns an integer drawn uniformly from [1, p-2].
func RandomExponent(random io.Reader, p *big.Int) (*big.Int, error) {
	if p == nil || p.Cmp(big.NewInt(3)) < 0 {
		return nil, fmt.Errorf("%w: modulus too small for an exponent", domain.ErrInvalidParameters)
	}
	return RandomInRange(random, one, new(big.Int).Sub(p, big.NewInt(2)))
}
