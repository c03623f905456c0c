package signature_test

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
	"elgamal/internal/group"
	"elgamal/internal/keys"
	"elgamal/internal/protocol/signature"
)

// Handbook of Applied Cryptography, example 11.65.
func TestSignWithNonce_KnownAnswer(t *testing.T) {
	params := domain.Parameters{P: big.NewInt(2357), G: big.NewInt(2)}
	kp, err := keys.FromPrivate(params, big.NewInt(1751))
	require.NoError(t, err)
	require.Equal(t, int64(1185), kp.Public.Int64())

	sig, err := signature.SignWithNonce(params, kp.Private, big.NewInt(1463), big.NewInt(1529))
	require.NoError(t, err)
	assert.Equal(t, int64(1490), sig.X.Int64())
	assert.Equal(t, int64(1777), sig.Y.Int64())
	assert.True(t, signature.Verify(params, kp.Public, big.NewInt(1463), sig))
	assert.False(t, signature.Verify(params, kp.Public, big.NewInt(1464), sig))
}

func TestSignWithNonce_RejectsNonInvertibleNonce(t *testing.T) {
	params := domain.Parameters{P: big.NewInt(2357), G: big.NewInt(2)}
	_, err := signature.SignWithNonce(params, big.NewInt(1751), big.NewInt(1463), big.NewInt(2))
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestSignVerify_SmallGroup(t *testing.T) {
	params := domain.Parameters{P: big.NewInt(467), G: big.NewInt(2)}
	kp, err := keys.FromPrivate(params, big.NewInt(3))
	require.NoError(t, err)
	signer := signature.New(rand.Reader)

	for h := int64(0); h < 200; h += 13 {
		digest := big.NewInt(h)
		sig, err := signer.Sign(params, kp, digest)
		require.NoError(t, err)
		require.True(t, signer.Verify(params, kp.Public, digest, sig), "h=%d", h)

		corrupted := domain.Signature{X: sig.X, Y: new(big.Int).Add(sig.Y, big.NewInt(1))}
		// x = 1 would make y irrelevant; 2 has order 466 and k < 466.
		require.False(t, signer.Verify(params, kp.Public, digest, corrupted), "h=%d", h)
	}
}

func TestSignVerify_GeneratedParameters(t *testing.T) {
	for _, mode := range []group.Mode{group.ModeFull, group.ModeSubgroup} {
		b := group.NewBuilder(rand.Reader, group.Config{Mode: mode, SafePrime: true}, zerolog.Nop())
		params, err := b.Build(context.Background(), 264)
		require.NoError(t, err)
		kp, err := keys.Generate(rand.Reader, params)
		require.NoError(t, err)

		digest := crypto.DigestInt(crypto.SHA256, []byte("Hello, world!"))
		sig, err := signature.Sign(rand.Reader, params, kp, digest)
		require.NoError(t, err)
		assert.True(t, signature.Verify(params, kp.Public, digest, sig), mode)

		corrupted := domain.Signature{X: sig.X, Y: new(big.Int).Add(sig.Y, big.NewInt(1))}
		assert.False(t, signature.Verify(params, kp.Public, digest, corrupted), mode)

		other := crypto.DigestInt(crypto.SHA256, []byte("Hello, world?"))
		assert.False(t, signature.Verify(params, kp.Public, other, sig), mode)
	}
}

func TestVerify_RangeChecks(t *testing.T) {
	params := domain.Parameters{P: big.NewInt(467), G: big.NewInt(2)}
	pub := big.NewInt(8)
	h := big.NewInt(42)
	cases := []domain.Signature{
		{},
		{X: big.NewInt(0), Y: big.NewInt(5)},
		{X: big.NewInt(467), Y: big.NewInt(5)},
		{X: big.NewInt(5), Y: big.NewInt(0)},
		{X: big.NewInt(5), Y: big.NewInt(466)},
	}
	for i, sig := range cases {
		assert.False(t, signature.Verify(params, pub, h, sig), "case %d", i)
	}
	assert.False(t, signature.Verify(domain.Parameters{}, pub, h, domain.Signature{X: big.NewInt(1), Y: big.NewInt(1)}))
}

func TestSign_InvalidInput(t *testing.T) {
	params := domain.Parameters{P: big.NewInt(467), G: big.NewInt(2)}
	_, err := signature.Sign(rand.Reader, params, domain.KeyPair{}, big.NewInt(1))
	require.ErrorIs(t, err, domain.ErrInvalidParameters)

	_, err = signature.Sign(rand.Reader, domain.Parameters{}, domain.KeyPair{Private: big.NewInt(3)}, big.NewInt(1))
	require.ErrorIs(t, err, domain.ErrInvalidParameters)

	_, err = signature.Sign(rand.Reader, params, domain.KeyPair{Private: big.NewInt(-3)}, big.NewInt(1))
	require.ErrorIs(t, err, domain.ErrInvalidParameters)

	assert.False(t, signature.Verify(params, big.NewInt(-8), big.NewInt(1), domain.Signature{X: big.NewInt(4), Y: big.NewInt(43)}))
}

// legacyRef is an independent word-sized rendition of the legacy algebra.
func legacyRef(p, g, a, h, x, y uint64) bool {
	modpow := func(b, e, m uint64) uint64 {
		r := uint64(1) % m
		b %= m
		for ; e > 0; e >>= 1 {
			if e&1 == 1 {
				r = r * b % m
			}
			b = b * b % m
		}
		return r
	}
	s := modpow(x, a, p)
	if s == 0 {
		return false
	}
	w := modpow(s, p-2, p)
	u1 := h % p * w % p
	u2 := y % p * w % p
	v := modpow(g, u1, p) * modpow(y, u2, p) % p % (p - 1)
	return v == x
}

func TestVerifyLegacy_MatchesReference(t *testing.T) {
	const p, g, a = 467, 2, 3
	params := domain.Parameters{P: big.NewInt(p), G: big.NewInt(g)}
	priv := big.NewInt(a)

	hits := 0
	for h := uint64(1); h < 8; h++ {
		for x := uint64(0); x < p; x += 3 {
			for y := uint64(0); y < p; y += 5 {
				want := legacyRef(p, g, a, h, x, y)
				got := signature.VerifyLegacy(params, priv, new(big.Int).SetUint64(h),
					domain.Signature{X: new(big.Int).SetUint64(x), Y: new(big.Int).SetUint64(y)})
				require.Equal(t, want, got, "h=%d x=%d y=%d", h, x, y)
				if got {
					hits++
				}
			}
		}
	}
	t.Logf("legacy accepted %d tuples", hits)
}

func TestVerifyLegacy_KnownVectors(t *testing.T) {
	params := domain.Parameters{P: big.NewInt(467), G: big.NewInt(2)}
	priv := big.NewInt(3)
	h := big.NewInt(1)

	assert.True(t, signature.VerifyLegacy(params, priv, h, domain.Signature{X: big.NewInt(4), Y: big.NewInt(43)}))
	assert.False(t, signature.VerifyLegacy(params, priv, h, domain.Signature{X: big.NewInt(4), Y: big.NewInt(44)}))
	// s = 0 is rejected rather than inverted.
	assert.False(t, signature.VerifyLegacy(params, priv, h, domain.Signature{X: big.NewInt(0), Y: big.NewInt(44)}))
	assert.False(t, signature.VerifyLegacy(params, nil, h, domain.Signature{X: big.NewInt(4), Y: big.NewInt(43)}))
	// Negative or zero exponents are refused before any inversion.
	assert.False(t, signature.VerifyLegacy(params, big.NewInt(-1), h, domain.Signature{X: big.NewInt(0), Y: big.NewInt(5)}))
	assert.False(t, signature.VerifyLegacy(params, big.NewInt(-3), h, domain.Signature{X: big.NewInt(4), Y: big.NewInt(43)}))
	assert.False(t, signature.VerifyLegacy(params, big.NewInt(0), h, domain.Signature{X: big.NewInt(4), Y: big.NewInt(43)}))
}
