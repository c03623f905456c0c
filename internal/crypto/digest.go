package crypto

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"elgamal/internal/domain"
	"elgamal/internal/util/memzero"
)

// Digest maps arbitrary bytes to a fixed-width output.
type Digest interface {
	Name() string
	Size() int
	Sum(msg []byte) []byte
}

type digestFunc struct {
	name string
	size int
	sum  func([]byte) []byte
}

func (d digestFunc) Name() string          { return d.name }
func (d digestFunc) Size() int             { return d.size }
func (d digestFunc) Sum(msg []byte) []byte { return d.sum(msg) }

var (
	// SHA256 is the default digest.
	SHA256 Digest = digestFunc{name: "sha256", size: sha256.Size, sum: func(b []byte) []byte {
		s := sha256.Sum256(b)
		return s[:]
	}}

	// SHA3_256 is FIPS 202 SHA3-256.
	SHA3_256 Digest = digestFunc{name: "sha3-256", size: 32, sum: func(b []byte) []byte {
		s := sha3.Sum256(b)
		return s[:]
	}}

	// BLAKE2b256 is unkeyed BLAKE2b with a 256-bit output.
	BLAKE2b256 Digest = digestFunc{name: "blake2b-256", size: blake2b.Size256, sum: func(b []byte) []byte {
		s := blake2b.Sum256(b)
		return s[:]
	}}
)

var digests = map[string]Digest{
	SHA256.Name():     SHA256,
	SHA3_256.Name():   SHA3_256,
	BLAKE2b256.Name(): BLAKE2b256,
}

// DigestByName returns the digest registered under name (case-insensitive).
// An empty name selects SHA256.
func DigestByName(name string) (Digest, error) {
	if name == "" {
		return SHA256, nil
	}
	d, ok := digests[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", domain.ErrUnknownDigest, name, strings.Join(DigestNames(), ", "))
	}
	return d, nil
}

// DigestNames lists the registered digest names in sorted order.
func DigestNames() []string {
	names := make([]string, 0, len(digests))
	for n := range digests {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DigestInt hashes msg with d and reads the result as a big-endian integer.
//
// The digest is the value ElGamal encrypts, so the intermediate byte slice is
// wiped once it has been copied into the integer.
func DigestInt(d Digest, msg []byte) *big.Int {
	sum := d.Sum(msg)
	m := new(big.Int).SetBytes(sum)
	memzero.Zero(sum)
	return m
}
