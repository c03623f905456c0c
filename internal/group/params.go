package group

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/rs/zerolog"

	"elgamal/internal/domain"
	"elgamal/internal/primes"
)

// Mode selects which group g generates.
type Mode string

const (
	// ModeFull makes g a primitive root of Z_p*.
	ModeFull Mode = "full"
	// ModeSubgroup makes g generate the prime-order-q subgroup of a safe prime.
	ModeSubgroup Mode = "subgroup"
)

// ParseMode accepts "full", "subgroup" or "" (full).
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFull:
		return ModeFull, nil
	case ModeSubgroup:
		return ModeSubgroup, nil
	}
	return "", fmt.Errorf("%w: unknown generator mode %q", domain.ErrInvalidParameters, s)
}

// Config controls parameter generation.
type Config struct {
	Mode      Mode
	SafePrime bool
	Prime     primes.Config
	Generator GeneratorConfig
	// MaxPrimes caps how many plain primes are drawn when p-1 resists
	// factoring; zero selects DefaultMaxPrimes. Unused for safe primes.
	MaxPrimes int
}

// DefaultMaxPrimes is the plain-prime redraw cap used when Config.MaxPrimes is zero.
const DefaultMaxPrimes = 64

// Builder generates domain parameters for a bit length.
type Builder struct {
	random io.Reader
	cfg    Config
	log    zerolog.Logger
}

// NewBuilder returns a Builder drawing randomness from random.
func NewBuilder(random io.Reader, cfg Config, log zerolog.Logger) *Builder {
	if cfg.Mode == "" {
		cfg.Mode = ModeFull
	}
	// A prime-order subgroup needs p-1 = 2q.
	if cfg.Mode == ModeSubgroup {
		cfg.SafePrime = true
	}
	return &Builder{random: random, cfg: cfg, log: log.With().Str("component", "group").Logger()}
}

// Build generates p of exactly bits bits and a matching generator.
func (b *Builder) Build(ctx context.Context, bits int) (domain.Parameters, error) {
	if !b.cfg.SafePrime {
		return b.buildPlain(ctx, bits)
	}

	p, q, err := primes.GenerateSafe(ctx, b.random, bits, b.cfg.Prime)
	if err != nil {
		return domain.Parameters{}, err
	}
	if b.cfg.Mode == ModeSubgroup {
		g, _, err := FindSubgroupGenerator(b.random, p, b.cfg.Generator.MaxCandidates)
		if err != nil {
			return domain.Parameters{}, err
		}
		b.log.Debug().Int("bits", bits).Msg("built subgroup parameters")
		return domain.Parameters{P: p, G: g, Q: q}, nil
	}
	// Safe prime: the factors of p-1 are known, no factoring needed.
	factors := []*big.Int{big.NewInt(2), q}
	if q.Cmp(two) == 0 {
		factors = factors[:1]
	}
	g, err := FindGeneratorWithFactors(ctx, p, factors, b.cfg.Generator.MaxCandidates)
	if err != nil {
		return domain.Parameters{}, err
	}
	b.log.Debug().Int("bits", bits).Str("g", g.String()).Msg("built safe-prime parameters")
	return domain.Parameters{P: p, G: g}, nil
}

// buildPlain draws plain primes until p-1 factors within the rho budget.
// Every accepted g still passes the check against all prime factors.
func (b *Builder) buildPlain(ctx context.Context, bits int) (domain.Parameters, error) {
	maxPrimes := b.cfg.MaxPrimes
	if maxPrimes <= 0 {
		maxPrimes = DefaultMaxPrimes
	}
	for drawn := 1; drawn <= maxPrimes; drawn++ {
		p, err := primes.Generate(ctx, b.random, bits, b.cfg.Prime)
		if err != nil {
			return domain.Parameters{}, err
		}
		g, err := FindGenerator(ctx, p, b.cfg.Generator)
		if errors.Is(err, domain.ErrFactorizationIncomplete) {
			b.log.Debug().Int("bits", bits).Int("drawn", drawn).Msg("p-1 resisted factoring, redrawing p")
			continue
		}
		if err != nil {
			return domain.Parameters{}, err
		}
		b.log.Debug().Int("bits", bits).Int("drawn", drawn).Str("g", g.String()).Msg("built full-group parameters")
		return domain.Parameters{P: p, G: g}, nil
	}
	return domain.Parameters{}, domain.Errorf("build_parameters",
		"%w: p-1 of %d %d-bit primes could not be factored", domain.ErrPrimeGenerationFailed, maxPrimes, bits)
}

// Validate checks that params describe a usable group.
func Validate(params domain.Parameters, rounds int) error {
	const op = "validate_parameters"
	if rounds <= 0 {
		rounds = primes.DefaultRounds
	}
	p, g := params.P, params.G
	if p == nil || g == nil {
		return domain.Errorf(op, "%w: missing p or g", domain.ErrInvalidParameters)
	}
	if !p.ProbablyPrime(rounds) {
		return domain.Errorf(op, "%w: p is not prime", domain.ErrInvalidParameters)
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return domain.Errorf(op, "%w: g outside (1, p)", domain.ErrInvalidParameters)
	}
	if new(big.Int).Exp(g, params.PMinusOne(), p).Cmp(one) != 0 {
		return domain.Errorf(op, "%w: g^(p-1) != 1 mod p", domain.ErrInvalidParameters)
	}
	if q := params.Q; q != nil {
		if !q.ProbablyPrime(rounds) {
			return domain.Errorf(op, "%w: q is not prime", domain.ErrInvalidParameters)
		}
		if new(big.Int).Mod(params.PMinusOne(), q).Sign() != 0 {
			return domain.Errorf(op, "%w: q does not divide p-1", domain.ErrInvalidParameters)
		}
		if new(big.Int).Exp(g, q, p).Cmp(one) != 0 {
			return domain.Errorf(op, "%w: g does not have order q", domain.ErrInvalidParameters)
		}
	}
	return nil
}
