package run

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"elgamal/internal/crypto"
	"elgamal/internal/domain"
	"elgamal/internal/metrics"
	"elgamal/internal/protocol/signature"
	"elgamal/internal/util/memzero"
)

// Service wires the parameter, key, cipher and signature steps of a run.
type Service struct {
	params domain.ParameterBuilder
	keys   domain.KeyGenerator
	cipher domain.Cipher
	signer domain.Signer
	digest crypto.Digest
	store  domain.ReportStore
	log    zerolog.Logger
	now    func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithStore persists every successful report.
func WithStore(s domain.ReportStore) Option { return func(svc *Service) { svc.store = s } }

// WithLogger sets the logger; the default discards output.
func WithLogger(l zerolog.Logger) Option { return func(svc *Service) { svc.log = l } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(svc *Service) { svc.now = now } }

// New constructs a run Service. digest must be the digest cipher encrypts.
func New(
	params domain.ParameterBuilder,
	keys domain.KeyGenerator,
	cipher domain.Cipher,
	signer domain.Signer,
	digest crypto.Digest,
	opts ...Option,
) *Service {
	if digest == nil {
		digest = crypto.SHA256
	}
	svc := &Service{
		params: params,
		keys:   keys,
		cipher: cipher,
		signer: signer,
		digest: digest,
		log:    zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.log = svc.log.With().Str("component", "run").Logger()
	return svc
}

// Run performs one exercise. Any failing step aborts the run and is returned
// wrapped with the bit length; verification outcomes are reported, not raised.
func (s *Service) Run(ctx context.Context, bits int, message []byte) (domain.Report, error) {
	start := s.now()
	id := uuid.NewString()
	log := s.log.With().Str("run", id).Int("bits", bits).Logger()

	params, err := s.params.Build(ctx, bits)
	metrics.Operation("params", err == nil)
	if err != nil {
		return domain.Report{}, fmt.Errorf("run %d bits: %w", bits, err)
	}
	log.Debug().Str("p_fp", crypto.Fingerprint(params.P)).Str("g", params.G.String()).Msg("parameters ready")

	kp, err := s.keys.Generate(params)
	metrics.Operation("keys", err == nil)
	if err != nil {
		return domain.Report{}, fmt.Errorf("run %d bits: %w", bits, err)
	}
	defer kp.Wipe()

	ct, err := s.cipher.Encrypt(params, kp.Public, message)
	metrics.Operation("encrypt", err == nil)
	if err != nil {
		return domain.Report{}, fmt.Errorf("run %d bits: %w", bits, err)
	}

	decrypted, err := s.cipher.Decrypt(params, kp.Private, ct)
	metrics.Operation("decrypt", err == nil)
	if err != nil {
		return domain.Report{}, fmt.Errorf("run %d bits: %w", bits, err)
	}
	want := s.digest.Sum(message)
	matches := bytes.Equal(decrypted, want)
	memzero.Zero(want)
	metrics.Operation("digest_match", matches)

	h := crypto.DigestInt(s.digest, message)
	sig, err := s.signer.Sign(params, kp, h)
	metrics.Operation("sign", err == nil)
	if err != nil {
		return domain.Report{}, fmt.Errorf("run %d bits: %w", bits, err)
	}
	valid := s.signer.Verify(params, kp.Public, h, sig)
	metrics.Operation("verify", valid)

	corrupted := domain.Signature{X: sig.X, Y: new(big.Int).Add(sig.Y, big.NewInt(1))}
	corruptedValid := s.signer.Verify(params, kp.Public, h, corrupted)
	metrics.Operation("verify_corrupted", !corruptedValid)

	// The older check was run against the ciphertext pair itself, then again
	// with y incremented.
	legacy := signature.VerifyLegacy(params, kp.Private, h, domain.Signature(ct))
	legacyCorrupted := signature.VerifyLegacy(params, kp.Private, h,
		domain.Signature{X: ct.X, Y: new(big.Int).Add(ct.Y, big.NewInt(1))})

	elapsed := s.now().Sub(start)
	metrics.RunObserver(strconv.Itoa(bits)).Observe(elapsed.Seconds())

	report := domain.Report{
		ID:                      id,
		Bits:                    bits,
		Digest:                  s.digest.Name(),
		Params:                  params,
		PublicKey:               new(big.Int).Set(kp.Public),
		PublicKeyFingerprint:    crypto.Fingerprint(params.P, params.G, kp.Public),
		Ciphertext:              ct,
		Decrypted:               decrypted,
		DigestMatches:           matches,
		Signature:               sig,
		SignatureValid:          valid,
		CorruptedSignatureValid: corruptedValid,
		LegacyVerified:          legacy,
		LegacyCorruptedVerified: legacyCorrupted,
		Elapsed:                 elapsed,
		CreatedUTC:              start.UTC().Unix(),
	}

	if s.store != nil {
		if err := s.store.SaveReport(report); err != nil {
			return report, fmt.Errorf("run %d bits: saving report: %w", bits, err)
		}
	}

	log.Info().
		Bool("digest_matches", matches).
		Bool("signature_valid", valid).
		Bool("corrupted_valid", corruptedValid).
		Dur("elapsed", elapsed).
		Msg("run complete")
	return report, nil
}
