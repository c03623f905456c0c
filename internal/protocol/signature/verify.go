package signature

import (
	"math/big"

	"elgamal/internal/domain"
)

// Verify reports whether g^H == pub^x * x^y (mod p) with 0 < x < p and
// 0 < y < p-1.
func Verify(params domain.Parameters, verifyingKey, digest *big.Int, sig domain.Signature) bool {
	if checkParams(params) != nil || verifyingKey == nil || digest == nil || verifyingKey.Sign() <= 0 || digest.Sign() < 0 {
		return false
	}
	if sig.X == nil || sig.Y == nil {
		return false
	}
	p := params.P
	if sig.X.Sign() <= 0 || sig.X.Cmp(p) >= 0 {
		return false
	}
	if sig.Y.Sign() <= 0 || sig.Y.Cmp(params.PMinusOne()) >= 0 {
		return false
	}

	lhs := new(big.Int).Exp(params.G, digest, p)

	rhs := new(big.Int).Exp(verifyingKey, sig.X, p)
	t := new(big.Int).Exp(sig.X, sig.Y, p)
	rhs.Mul(rhs, t)
	rhs.Mod(rhs, p)

	return lhs.Cmp(rhs) == 0
}
