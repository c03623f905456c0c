// Package elgamal implements ElGamal encryption over Z_p*.
//
// Encryption is over the message digest, not the message: Encrypt hashes the
// plaintext, reads the digest as an integer m < p and returns
//
//	x = g^k mod p
//	y = pub^k * m mod p
//
// for a fresh k in [1, p-2]. Decrypt recovers the digest bytes, never the
// original plaintext.
//
// Decryption inverts the shared secret s = x^a mod p by Fermat's little
// theorem, s^-1 = s^(p-2) mod p. A ciphertext with s == 0 is rejected with
// domain.ErrInvalidCiphertext.
package elgamal
