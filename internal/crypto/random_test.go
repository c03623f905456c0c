package crypto_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
)

func TestRandomInRange_Bounds(t *testing.T) {
	lo, hi := big.NewInt(5), big.NewInt(9)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		r, err := crypto.RandomInRange(rand.Reader, lo, hi)
		require.NoError(t, err)
		require.True(t, r.Cmp(lo) >= 0 && r.Cmp(hi) <= 0, "out of range: %v", r)
		seen[r.Int64()] = true
	}
	require.Len(t, seen, 5)
}

func TestRandomInRange_Empty(t *testing.T) {
	_, err := crypto.RandomInRange(rand.Reader, big.NewInt(3), big.NewInt(2))
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestRandomExponent(t *testing.T) {
	p := big.NewInt(467)
	for i := 0; i < 200; i++ {
		k, err := crypto.RandomExponent(rand.Reader, p)
		require.NoError(t, err)
		require.True(t, k.Sign() > 0 && k.Cmp(big.NewInt(465)) <= 0)
	}

	_, err := crypto.RandomExponent(rand.Reader, big.NewInt(2))
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestFingerprint(t *testing.T) {
	a := crypto.Fingerprint(big.NewInt(467), big.NewInt(2))
	b := crypto.Fingerprint(big.NewInt(467), big.NewInt(3))
	require.Len(t, a, 20)
	require.NotEqual(t, a, b)
	require.Equal(t, a, crypto.Fingerprint(big.NewInt(467), big.NewInt(2)))
}

func TestHexRoundTrip(t *testing.T) {
	x := big.NewInt(0x1d3)
	require.Equal(t, "1d3", crypto.Hex(x))

	y, err := crypto.ParseHex("0x1d3")
	require.NoError(t, err)
	require.Zero(t, x.Cmp(y))

	z, err := crypto.ParseHex("")
	require.NoError(t, err)
	require.Nil(t, z)

	_, err = crypto.ParseHex("xyz")
	require.Error(t, err)
}
