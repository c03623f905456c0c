package app

import (
	"crypto/rand"
	"path/filepath"

	"github.com/rs/zerolog"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
	"elgamal/internal/group"
	"elgamal/internal/keys"
	"elgamal/internal/metrics"
	"elgamal/internal/primes"
	"elgamal/internal/protocol/elgamal"
	"elgamal/internal/protocol/signature"
	runsvc "elgamal/internal/services/run"
	"elgamal/internal/store"
	"elgamal/internal/sweep"
)

// Wire bundles the builders, services and stores used by the CLI.
type Wire struct {
	Params  *group.Builder
	Digest  crypto.Digest
	Reports *store.ReportFileStore
	Runs    domain.RunService
	Sweep   *sweep.Runner
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	digest, err := crypto.DigestByName(cfg.Digest)
	if err != nil {
		return nil, err
	}

	builder := group.NewBuilder(rand.Reader, group.Config{
		Mode:      cfg.Mode,
		SafePrime: cfg.Safe,
		Prime: primes.Config{
			Rounds:      cfg.Rounds,
			MaxAttempts: cfg.MaxAttempts,
			Observer:    metrics.PrimeObserver,
		},
		Generator: group.GeneratorConfig{
			Factor: primes.FactorConfig{Rounds: cfg.Rounds},
		},
	}, log)
	kg := keys.New(rand.Reader)
	engine := elgamal.New(rand.Reader, digest)
	signer := signature.New(rand.Reader)
	reports := store.NewReportFileStore(filepath.Clean(cfg.Home))

	opts := []runsvc.Option{runsvc.WithLogger(log)}
	if cfg.Save {
		opts = append(opts, runsvc.WithStore(reports))
	}
	runs := runsvc.New(builder, kg, engine, signer, digest, opts...)

	return &Wire{
		Params:  builder,
		Digest:  digest,
		Reports: reports,
		Runs:    runs,
		Sweep:   sweep.NewRunner(runs, cfg.Workers, cfg.StopOnError, log),
	}, nil
}
