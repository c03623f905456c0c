// Package domain defines the data model and contracts shared across the module.
// It contains plain types (parameters, keys, ciphertexts, signatures, reports),
// the error taxonomy, and the interfaces services are wired against.
package domain
