// Package keys derives ElGamal key pairs from domain parameters.
//
// The private exponent is drawn uniformly from [1, p-2] and the public key is
// g^private mod p. Callers own the returned domain.KeyPair and should call
// Wipe once the private exponent is no longer needed.
package keys
