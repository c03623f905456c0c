package primes

import (
	"context"
	"math/big"
	"sort"

	"elgamal/internal/domain"
)

// FactorConfig bounds the effort spent by Factor.
type FactorConfig struct {
	// Rounds of Miller–Rabin used to certify factors; zero selects DefaultRounds.
	Rounds int
	// RhoIterations caps each Pollard rho walk; zero selects 1<<16.
	RhoIterations int
	// RhoRestarts caps the number of polynomial constants tried; zero selects 16.
	RhoRestarts int
}

func (c FactorConfig) withDefaults() FactorConfig {
	if c.Rounds <= 0 {
		c.Rounds = DefaultRounds
	}
	if c.RhoIterations <= 0 {
		c.RhoIterations = 1 << 16
	}
	if c.RhoRestarts <= 0 {
		c.RhoRestarts = 16
	}
	return c
}

// Factor returns the distinct prime factors of n in ascending order.
//
// Small factors are removed by trial division; what remains is split with
// Pollard's rho. If a composite cofactor resists the configured budget,
// Factor returns domain.ErrFactorizationIncomplete.
func Factor(ctx context.Context, n *big.Int, cfg FactorConfig) ([]*big.Int, error) {
	const op = "factor"
	if n == nil || n.Cmp(one) <= 0 {
		return nil, domain.Errorf(op, "%w: cannot factor %v", domain.ErrInvalidParameters, n)
	}
	cfg = cfg.withDefaults()

	found := map[string]*big.Int{}
	add := func(f *big.Int) { found[f.String()] = new(big.Int).Set(f) }

	m := new(big.Int).Set(n)
	if m.Bit(0) == 0 {
		add(big.NewInt(2))
		m.Rsh(m, m.TrailingZeroBits())
	}

	q, r := new(big.Int), new(big.Int)
	for _, sp := range smallPrimes {
		if m.Cmp(one) == 0 {
			break
		}
		bp := new(big.Int).SetUint64(sp)
		q.QuoRem(m, bp, r)
		if r.Sign() != 0 {
			continue
		}
		add(bp)
		for r.Sign() == 0 {
			m.Set(q)
			q.QuoRem(m, bp, r)
		}
	}

	if err := split(ctx, m, cfg, add); err != nil {
		return nil, domain.Errorf(op, "%w", err)
	}

	out := make([]*big.Int, 0, len(found))
	for _, f := range found {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out, nil
}

func split(ctx context.Context, n *big.Int, cfg FactorConfig, add func(*big.Int)) error {
	if n.Cmp(one) == 0 {
		return nil
	}
	if n.ProbablyPrime(cfg.Rounds) {
		add(n)
		return nil
	}
	d, err := rho(ctx, n, cfg)
	if err != nil {
		return err
	}
	if err := split(ctx, d, cfg, add); err != nil {
		return err
	}
	return split(ctx, new(big.Int).Quo(n, d), cfg, add)
}

// rho finds a non-trivial divisor of the odd composite n with Floyd's cycle
// walk over x -> x^2 + c (mod n).
func rho(ctx context.Context, n *big.Int, cfg FactorConfig) (*big.Int, error) {
	var (
		x    = new(big.Int)
		y    = new(big.Int)
		d    = new(big.Int)
		diff = new(big.Int)
		c    = new(big.Int)
	)
	step := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, c)
		v.Mod(v, n)
	}
	for restart := 1; restart <= cfg.RhoRestarts; restart++ {
		c.SetInt64(int64(restart))
		x.SetInt64(2)
		y.SetInt64(2)
		d.SetInt64(1)
		for i := 0; i < cfg.RhoIterations && d.Cmp(one) == 0; i++ {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
			step(x)
			step(y)
			step(y)
			diff.Sub(x, y)
			diff.Abs(diff)
			d.GCD(nil, nil, diff, n)
		}
		if d.Cmp(one) != 0 && d.Cmp(n) != 0 {
			return new(big.Int).Set(d), nil
		}
	}
	return nil, domain.ErrFactorizationIncomplete
}
