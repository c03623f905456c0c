package group

import (
	"context"
	"io"
	"math/big"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
	"elgamal/internal/primes"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// GeneratorConfig bounds the generator search.
type GeneratorConfig struct {
	// MaxCandidates caps how many g are tried; zero means up to p-2.
	MaxCandidates int
	Factor        primes.FactorConfig
}

// FindGenerator returns the smallest g in [2, p-1) that generates Z_p*.
func FindGenerator(ctx context.Context, p *big.Int, cfg GeneratorConfig) (*big.Int, error) {
	const op = "find_generator"
	if p == nil || p.Cmp(two) <= 0 {
		return nil, domain.Errorf(op, "%w: modulus %v has no generator in [2, p-1)", domain.ErrNoGeneratorFound, p)
	}
	pm1 := new(big.Int).Sub(p, one)
	factors, err := primes.Factor(ctx, pm1, cfg.Factor)
	if err != nil {
		return nil, domain.Errorf(op, "factoring p-1: %w", err)
	}
	return findGenerator(ctx, p, factors, cfg.MaxCandidates)
}

// FindGeneratorWithFactors is FindGenerator for callers that already know the
// distinct prime factors of p-1, e.g. {2, q} for a safe prime.
func FindGeneratorWithFactors(ctx context.Context, p *big.Int, factors []*big.Int, maxCandidates int) (*big.Int, error) {
	if p == nil || p.Cmp(two) <= 0 {
		return nil, domain.Errorf("find_generator", "%w: modulus %v has no generator in [2, p-1)", domain.ErrNoGeneratorFound, p)
	}
	return findGenerator(ctx, p, factors, maxCandidates)
}

func findGenerator(ctx context.Context, p *big.Int, factors []*big.Int, maxCandidates int) (*big.Int, error) {
	pm1 := new(big.Int).Sub(p, one)
	exps := make([]*big.Int, len(factors))
	for i, f := range factors {
		exps[i] = new(big.Int).Quo(pm1, f)
	}

	tried := 0
	z := new(big.Int)
	for g := big.NewInt(2); g.Cmp(pm1) < 0; g.Add(g, one) {
		if maxCandidates > 0 && tried >= maxCandidates {
			break
		}
		tried++
		if tried%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		ok := true
		for _, e := range exps {
			if z.Exp(g, e, p).Cmp(one) == 0 {
				ok = false
				break
			}
		}
		if ok {
			return new(big.Int).Set(g), nil
		}
	}
	return nil, domain.Errorf("find_generator", "%w: %d candidates tried", domain.ErrNoGeneratorFound, tried)
}

// IsGenerator reports whether g generates Z_p* given the prime factors of p-1.
func IsGenerator(g, p *big.Int, factors []*big.Int) bool {
	if g == nil || p == nil || g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return false
	}
	pm1 := new(big.Int).Sub(p, one)
	e, z := new(big.Int), new(big.Int)
	for _, f := range factors {
		e.Quo(pm1, f)
		if z.Exp(g, e, p).Cmp(one) == 0 {
			return false
		}
	}
	return true
}

// FindSubgroupGenerator returns a generator of the order-q subgroup of
// quadratic residues modulo the safe prime p = 2q+1, together with q.
func FindSubgroupGenerator(random io.Reader, p *big.Int, maxCandidates int) (g, q *big.Int, err error) {
	const op = "find_subgroup_generator"
	if p == nil || p.Cmp(big.NewInt(5)) < 0 {
		return nil, nil, domain.Errorf(op, "%w: modulus %v too small", domain.ErrNoGeneratorFound, p)
	}
	q = new(big.Int).Rsh(p, 1)
	if maxCandidates <= 0 {
		maxCandidates = 1024
	}
	hi := new(big.Int).Sub(p, two)
	for i := 0; i < maxCandidates; i++ {
		h, err := crypto.RandomInRange(random, two, hi)
		if err != nil {
			return nil, nil, domain.Errorf(op, "sampling: %w", err)
		}
		// Squaring lands in the QR subgroup; for prime q any element but 1 generates it.
		g = h.Exp(h, two, p)
		if g.Cmp(one) != 0 {
			return g, q, nil
		}
	}
	return nil, nil, domain.Errorf(op, "%w: %d candidates tried", domain.ErrNoGeneratorFound, maxCandidates)
}
