package primes

import "math/big"

const sieveLimit = 2048

type sieveGroup struct {
	product *big.Int
	primes  []uint64
}

var (
	// odd primes below sieveLimit
	smallPrimes []uint64
	// smallPrimes packed so that each product fits in a uint64
	sieveGroups []sieveGroup
)

func init() {
	composite := make([]bool, sieveLimit)
	for i := 2; i < sieveLimit; i++ {
		if composite[i] {
			continue
		}
		if i > 2 {
			smallPrimes = append(smallPrimes, uint64(i))
		}
		for j := i * i; j < sieveLimit; j += i {
			composite[j] = true
		}
	}

	var (
		prod  uint64 = 1
		group []uint64
	)
	flush := func() {
		if len(group) == 0 {
			return
		}
		sieveGroups = append(sieveGroups, sieveGroup{
			product: new(big.Int).SetUint64(prod),
			primes:  group,
		})
		prod, group = 1, nil
	}
	for _, p := range smallPrimes {
		if prod > (1<<64-1)/p {
			flush()
		}
		prod *= p
		group = append(group, p)
	}
	flush()
}

// isSieveSized reports whether n is small enough to be a sieve prime itself.
func isSieveSized(n *big.Int) bool {
	return n.IsUint64() && n.Uint64() < sieveLimit
}

// hasSmallFactor reports whether the odd integer n is divisible by a sieve prime.
// Values inside the sieve range are left to ProbablyPrime.
func hasSmallFactor(n *big.Int) bool {
	if isSieveSized(n) {
		return false
	}
	r := new(big.Int)
	for _, g := range sieveGroups {
		m := r.Mod(n, g.product).Uint64()
		for _, p := range g.primes {
			if m%p == 0 {
				return true
			}
		}
	}
	return false
}

// rejectsSafe reports whether q or 2q+1 is divisible by a sieve prime.
// 2q+1 ≡ 0 (mod r) exactly when q ≡ (r-1)/2 (mod r).
func rejectsSafe(q *big.Int) bool {
	if isSieveSized(q) {
		return false
	}
	r := new(big.Int)
	for _, g := range sieveGroups {
		m := r.Mod(q, g.product).Uint64()
		for _, p := range g.primes {
			res := m % p
			if res == 0 || res == (p-1)/2 {
				return true
			}
		}
	}
	return false
}
