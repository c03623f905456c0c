// Package run executes one end-to-end ElGamal exercise for a bit length.
//
// A run builds domain parameters, derives a key pair, encrypts the digest of a
// message, decrypts it again, signs the digest and checks the signature both
// honestly and with a corrupted y. The outcome is a domain.Report carrying
// public values only; the private exponent is wiped before Run returns.
package run
