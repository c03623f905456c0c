// Package signature signs and verifies message digests with ElGamal keys.
//
// Sign and Verify implement the textbook scheme: verification needs only the
// public key. VerifyLegacy reproduces an older check that takes the private
// exponent at verification time. It is kept for compatibility with existing
// transcripts and is not a sound public-key signature: anyone able to run it
// can also decrypt.
package signature
