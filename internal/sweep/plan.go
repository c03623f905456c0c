// Package sweep runs a finite, cancellable series of runs over bit lengths.
package sweep

import (
	"fmt"

	"elgamal/internal/domain"
)

// MaxTasks caps the number of bit lengths a single Plan may expand to.
const MaxTasks = 4096

// Plan describes the bit lengths From, From+Step, ... up to and including To.
type Plan struct {
	From int
	To   int
	Step int
}

// Bits validates p and expands it.
func (p Plan) Bits() ([]int, error) {
	if p.From < 2 {
		return nil, fmt.Errorf("%w: sweep must start at 2 bits or more, got %d", domain.ErrInvalidBitLength, p.From)
	}
	if p.To < p.From {
		return nil, fmt.Errorf("%w: sweep end %d is below start %d", domain.ErrInvalidBitLength, p.To, p.From)
	}
	if p.Step < 1 {
		return nil, fmt.Errorf("%w: sweep step must be positive, got %d", domain.ErrInvalidParameters, p.Step)
	}
	n := (p.To-p.From)/p.Step + 1
	if n > MaxTasks {
		return nil, fmt.Errorf("%w: sweep expands to %d tasks (max %d)", domain.ErrInvalidParameters, n, MaxTasks)
	}
	out := make([]int, 0, n)
	for b := p.From; b <= p.To; b += p.Step {
		out = append(out, b)
	}
	return out, nil
}

func (p Plan) String() string {
	return fmt.Sprintf("%d..%d step %d", p.From, p.To, p.Step)
}
