// Package primes generates probable primes of an exact bit length and factors
// p-1 for generator certification.
//
// Every candidate is sampled at the full requested width and tested as a whole:
// a small-prime sieve discards obvious composites, then big.Int.ProbablyPrime
// runs the configured Miller–Rabin rounds followed by a Baillie–PSW test. The
// search is bounded by Config.MaxAttempts and honours context cancellation;
// exhausting the budget returns domain.ErrPrimeGenerationFailed.
//
// GenerateSafe restricts the search to safe primes p = 2q+1, for which p-1 has
// the known factorisation {2, q}. Factor handles general p-1 by trial division
// followed by Pollard's rho with a bounded iteration budget.
package primes
