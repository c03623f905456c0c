package domain

import (
	"context"
	"math/big"
)

// ParameterBuilder produces domain parameters for a requested bit length.
type ParameterBuilder interface {
	Build(ctx context.Context, bits int) (Parameters, error)
}

// KeyGenerator derives a key pair from domain parameters.
type KeyGenerator interface {
	Generate(params Parameters) (KeyPair, error)
}

// Cipher encrypts message digests and recovers them.
type Cipher interface {
	Encrypt(params Parameters, public *big.Int, message []byte) (Ciphertext, error)
	Decrypt(params Parameters, private *big.Int, ct Ciphertext) ([]byte, error)
}

// Signer produces and checks signatures over message digests.
type Signer interface {
	Sign(params Parameters, kp KeyPair, digest *big.Int) (Signature, error)
	Verify(params Parameters, verifyingKey, digest *big.Int, sig Signature) bool
}

// RunService executes one end-to-end run for a bit length.
type RunService interface {
	Run(ctx context.Context, bits int, message []byte) (Report, error)
}

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(r Report) error
	LoadReport(id string) (Report, bool, error)
	ListReports() ([]string, error)
}
