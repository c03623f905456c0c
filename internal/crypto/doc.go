// Package crypto exposes the small primitives shared by the ElGamal packages.
//
// Contents
//
//   - Message digests selectable by name: SHA-256 (default), SHA3-256 and
//     BLAKE2b-256 (Digest, DigestByName, DigestInt)
//   - Uniform sampling of integers in a closed range from an injected
//     randomness source (RandomInRange, RandomExponent)
//   - Short fingerprints of public values for display/logging (Fingerprint)
//   - Hex helpers for printing and persisting big integers (Hex, ParseHex)
//
// # Notes
//
// Randomness is always taken from an io.Reader supplied by the caller so tests
// can inject deterministic streams; production wiring passes crypto/rand.Reader.
package crypto
