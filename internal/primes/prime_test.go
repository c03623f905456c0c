package primes_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elgamal/internal/domain"
	"elgamal/internal/primes"
)

func TestGenerate_ExactBitLength(t *testing.T) {
	for _, bits := range []int{2, 3, 8, 17, 64, 65, 128, 257, 512} {
		p, err := primes.Generate(context.Background(), rand.Reader, bits, primes.Config{})
		require.NoError(t, err, "bits=%d", bits)
		assert.Equal(t, bits, p.BitLen(), "bits=%d", bits)
		assert.True(t, p.ProbablyPrime(64), "bits=%d p=%v", bits, p)
	}
}

// Wide candidates must be tested as a whole; a value past 64 bits that only
// looked prime in its low word would fail here.
func TestGenerate_WideCandidatesAreFullyPrime(t *testing.T) {
	for i := 0; i < 5; i++ {
		p, err := primes.Generate(context.Background(), rand.Reader, 200, primes.Config{Rounds: 20})
		require.NoError(t, err)
		require.Equal(t, 200, p.BitLen())
		require.True(t, p.ProbablyPrime(64))
	}
}

func TestGenerate_InvalidBits(t *testing.T) {
	for _, bits := range []int{-1, 0, 1} {
		_, err := primes.Generate(context.Background(), rand.Reader, bits, primes.Config{})
		require.ErrorIs(t, err, domain.ErrInvalidBitLength)
	}
}

// An all-zero stream always yields the candidate 2^(bits-1)+1; for 16 bits that
// is 32769 = 3*3*11*331, so the search must give up at the cap.
func TestGenerate_AttemptCap(t *testing.T) {
	zeros := bytes.NewReader(make([]byte, 1<<12))
	var (
		observed int
		found    bool
	)
	cfg := primes.Config{
		MaxAttempts: 10,
		Observer: func(kind string, attempts int, ok bool) {
			observed, found = attempts, ok
		},
	}
	_, err := primes.Generate(context.Background(), zeros, 16, cfg)
	require.ErrorIs(t, err, domain.ErrPrimeGenerationFailed)
	assert.Equal(t, 10, observed)
	assert.False(t, found)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := primes.Generate(ctx, rand.Reader, 256, primes.Config{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateSafe(t *testing.T) {
	for _, bits := range []int{3, 4, 16, 64, 128} {
		p, q, err := primes.GenerateSafe(context.Background(), rand.Reader, bits, primes.Config{})
		require.NoError(t, err, "bits=%d", bits)
		assert.Equal(t, bits, p.BitLen())
		assert.True(t, q.ProbablyPrime(64))
		assert.True(t, p.ProbablyPrime(64))
		want := new(big.Int).Lsh(q, 1)
		want.Add(want, big.NewInt(1))
		assert.Zero(t, want.Cmp(p))
		assert.True(t, primes.IsSafe(p, 0))
	}

	_, _, err := primes.GenerateSafe(context.Background(), rand.Reader, 2, primes.Config{})
	require.ErrorIs(t, err, domain.ErrInvalidBitLength)
}

func TestIsSafe(t *testing.T) {
	assert.True(t, primes.IsSafe(big.NewInt(467), 0))
	assert.True(t, primes.IsSafe(big.NewInt(23), 0))
	assert.False(t, primes.IsSafe(big.NewInt(13), 0))
	assert.False(t, primes.IsSafe(big.NewInt(4), 0))
	assert.False(t, primes.IsSafe(nil, 0))
}
