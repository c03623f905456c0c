package primes

import (
	"context"
	"io"
	"math/big"

	"elgamal/internal/domain"
)

const (
	// DefaultRounds is the Miller–Rabin round count used when Config.Rounds is zero.
	DefaultRounds = 32

	// MinSafeBits is the smallest bit length that admits a safe prime (7 = 2*3+1).
	MinSafeBits = 3
)

// Observer is notified once per search with the number of candidates drawn.
type Observer func(kind string, attempts int, found bool)

// Config tunes the prime search.
type Config struct {
	// Rounds of Miller–Rabin; zero selects DefaultRounds.
	Rounds int
	// MaxAttempts caps the number of candidates; zero selects 100*bits for
	// plain primes and 4*bits*bits for safe primes.
	MaxAttempts int
	// Observer is optional.
	Observer Observer
}

func (c Config) withDefaults(bits int, safe bool) Config {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.MaxAttempts <= 0 {
		if safe {
			c.MaxAttempts = 4 * bits * bits
			if c.MaxAttempts < 1024 {
				c.MaxAttempts = 1024
			}
		} else {
			c.MaxAttempts = 100 * bits
		}
	}
	return c
}

func (c Config) observe(kind string, attempts int, found bool) {
	if c.Observer != nil {
		c.Observer(kind, attempts, found)
	}
}

// Generate returns a probable prime of exactly bits bits.
func Generate(ctx context.Context, random io.Reader, bits int, cfg Config) (*big.Int, error) {
	const op = "generate_prime"
	if bits < 2 {
		return nil, domain.Errorf(op, "%w: %d (need at least 2)", domain.ErrInvalidBitLength, bits)
	}
	cfg = cfg.withDefaults(bits, false)

	buf := make([]byte, (bits+7)/8)
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			cfg.observe("prime", attempt-1, false)
			return nil, err
		}
		p, err := candidate(random, bits, buf)
		if err != nil {
			return nil, domain.Errorf(op, "reading randomness: %w", err)
		}
		if hasSmallFactor(p) {
			continue
		}
		if p.ProbablyPrime(cfg.Rounds) {
			cfg.observe("prime", attempt, true)
			return p, nil
		}
	}
	cfg.observe("prime", cfg.MaxAttempts, false)
	return nil, domain.Errorf(op, "%w: no %d-bit prime after %d attempts",
		domain.ErrPrimeGenerationFailed, bits, cfg.MaxAttempts)
}

// GenerateSafe returns a safe prime p = 2q+1 of exactly bits bits, along with q.
func GenerateSafe(ctx context.Context, random io.Reader, bits int, cfg Config) (p, q *big.Int, err error) {
	const op = "generate_safe_prime"
	if bits < MinSafeBits {
		return nil, nil, domain.Errorf(op, "%w: %d (need at least %d)", domain.ErrInvalidBitLength, bits, MinSafeBits)
	}
	cfg = cfg.withDefaults(bits, true)

	buf := make([]byte, (bits-1+7)/8)
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			cfg.observe("safe-prime", attempt-1, false)
			return nil, nil, err
		}
		q, err = candidate(random, bits-1, buf)
		if err != nil {
			return nil, nil, domain.Errorf(op, "reading randomness: %w", err)
		}
		if rejectsSafe(q) {
			continue
		}
		// 2q+1 has exactly bits bits because q has exactly bits-1.
		p = new(big.Int).Lsh(q, 1)
		p.Add(p, one)
		if q.ProbablyPrime(cfg.Rounds) && p.ProbablyPrime(cfg.Rounds) {
			cfg.observe("safe-prime", attempt, true)
			return p, q, nil
		}
	}
	cfg.observe("safe-prime", cfg.MaxAttempts, false)
	return nil, nil, domain.Errorf(op, "%w: no %d-bit safe prime after %d attempts",
		domain.ErrPrimeGenerationFailed, bits, cfg.MaxAttempts)
}

// IsSafe reports whether p = 2q+1 with both p and q probable primes.
func IsSafe(p *big.Int, rounds int) bool {
	if p == nil || p.Cmp(big.NewInt(5)) < 0 || p.Bit(0) == 0 {
		return false
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	q := new(big.Int).Rsh(p, 1)
	return q.ProbablyPrime(rounds) && p.ProbablyPrime(rounds)
}

var one = big.NewInt(1)

// candidate fills buf from random and shapes it into an odd integer with
// exactly bits bits.
func candidate(random io.Reader, bits int, buf []byte) (*big.Int, error) {
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, err
	}
	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}
	// Clear bits above the requested width, then pin the top and bottom bits.
	buf[0] &= uint8(int(1<<b) - 1)
	buf[0] |= 1 << (b - 1)
	buf[len(buf)-1] |= 1
	return new(big.Int).SetBytes(buf), nil
}
