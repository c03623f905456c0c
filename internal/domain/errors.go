package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPrimeGenerationFailed indicates the prime search hit its attempt cap.
	ErrPrimeGenerationFailed = errors.New("elgamal: prime generation failed")

	// ErrNoGeneratorFound indicates the generator search space was exhausted.
	ErrNoGeneratorFound = errors.New("elgamal: no generator found")

	// ErrInvalidCiphertext indicates a ciphertext whose shared secret is not invertible.
	ErrInvalidCiphertext = errors.New("elgamal: invalid ciphertext")

	// ErrInvalidBitLength indicates a requested bit length below the supported minimum.
	ErrInvalidBitLength = errors.New("elgamal: invalid bit length")

	// ErrInvalidParameters indicates malformed domain parameters or keys.
	ErrInvalidParameters = errors.New("elgamal: invalid parameters")

	// ErrDigestTooLarge indicates the message digest does not fit below p.
	ErrDigestTooLarge = errors.New("elgamal: digest does not fit the modulus")

	// ErrFactorizationIncomplete indicates p-1 could not be fully factored within budget.
	ErrFactorizationIncomplete = errors.New("elgamal: factorization incomplete")

	// ErrUnknownDigest indicates an unsupported digest name.
	ErrUnknownDigest = errors.New("elgamal: unknown digest")
)

// Error wraps an underlying error with the operation that raised it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an *Error for op whose message is formatted from format/args.
// Use %w in format to keep a sentinel reachable through errors.Is.
func Errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
