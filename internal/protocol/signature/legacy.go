package signature

import (
	"math/big"

	"elgamal/internal/domain"
)

// VerifyLegacy runs the historical check over (x, y):
//
//	s  = x^a mod p
//	w  = s^(p-2) mod p
//	u1 = H*w mod p
//	u2 = y*w mod p
//	v  = (g^u1 * y^u2 mod p) mod (p-1)
//
// and reports v == x. It needs the private exponent a, so it offers no
// public verifiability, and signatures from Sign do not in general pass it.
// A zero s (x ≡ 0 mod p) yields false.
func VerifyLegacy(params domain.Parameters, privateKey, digest *big.Int, sig domain.Signature) bool {
	if checkParams(params) != nil || privateKey == nil || digest == nil || privateKey.Sign() <= 0 {
		return false
	}
	if sig.X == nil || sig.Y == nil || sig.X.Sign() < 0 || sig.Y.Sign() < 0 {
		return false
	}
	p := params.P

	s := new(big.Int).Exp(sig.X, privateKey, p)
	if s.Sign() == 0 {
		return false
	}
	w := s.Exp(s, new(big.Int).Sub(p, big.NewInt(2)), p)

	u1 := new(big.Int).Mul(digest, w)
	u1.Mod(u1, p)
	u2 := new(big.Int).Mul(sig.Y, w)
	u2.Mod(u2, p)

	v := new(big.Int).Exp(params.G, u1, p)
	v.Mul(v, new(big.Int).Exp(sig.Y, u2, p))
	v.Mod(v, p)
	v.Mod(v, params.PMinusOne())

	return v.Cmp(sig.X) == 0
}
