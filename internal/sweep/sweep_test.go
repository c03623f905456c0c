package sweep_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elgamal/internal/domain"
	"elgamal/internal/sweep"
)

type fakeRuns struct {
	mu   sync.Mutex
	seen []int
	fail map[int]bool
}

func (f *fakeRuns) Run(ctx context.Context, bits int, _ []byte) (domain.Report, error) {
	f.mu.Lock()
	f.seen = append(f.seen, bits)
	f.mu.Unlock()
	if f.fail[bits] {
		return domain.Report{}, domain.ErrPrimeGenerationFailed
	}
	return domain.Report{Bits: bits}, nil
}

func (f *fakeRuns) ran() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]int(nil), f.seen...)
	sort.Ints(out)
	return out
}

func TestPlanBits(t *testing.T) {
	bits, err := sweep.Plan{From: 320, To: 512, Step: 64}.Bits()
	require.NoError(t, err)
	assert.Equal(t, []int{320, 384, 448, 512}, bits)

	bits, err = sweep.Plan{From: 10, To: 15, Step: 4}.Bits()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 14}, bits)

	bits, err = sweep.Plan{From: 64, To: 64, Step: 1}.Bits()
	require.NoError(t, err)
	assert.Equal(t, []int{64}, bits)
}

func TestPlanBits_Invalid(t *testing.T) {
	_, err := sweep.Plan{From: 1, To: 8, Step: 1}.Bits()
	require.ErrorIs(t, err, domain.ErrInvalidBitLength)

	_, err = sweep.Plan{From: 16, To: 8, Step: 1}.Bits()
	require.ErrorIs(t, err, domain.ErrInvalidBitLength)

	_, err = sweep.Plan{From: 8, To: 16, Step: 0}.Bits()
	require.ErrorIs(t, err, domain.ErrInvalidParameters)

	_, err = sweep.Plan{From: 2, To: 2 + sweep.MaxTasks, Step: 1}.Bits()
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestRunner_ContinuesPastFailures(t *testing.T) {
	runs := &fakeRuns{fail: map[int]bool{3: true}}
	r := sweep.NewRunner(runs, 3, false, zerolog.Nop())

	var got []sweep.Result
	sum, err := r.Run(context.Background(), sweep.Plan{From: 2, To: 6, Step: 1}, []byte("m"), func(res sweep.Result) {
		got = append(got, res)
	})
	require.NoError(t, err)
	assert.Equal(t, sweep.Summary{Planned: 5, Completed: 4, Failed: 1}, sum)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, runs.ran())
	require.Len(t, got, 5)

	for _, res := range got {
		if res.Bits == 3 {
			require.ErrorIs(t, res.Err, domain.ErrPrimeGenerationFailed)
		} else {
			require.NoError(t, res.Err)
			assert.Equal(t, res.Bits, res.Report.Bits)
		}
	}
}

func TestRunner_StopOnError(t *testing.T) {
	runs := &fakeRuns{fail: map[int]bool{4: true}}
	r := sweep.NewRunner(runs, 1, true, zerolog.Nop())

	sum, err := r.Run(context.Background(), sweep.Plan{From: 2, To: 8, Step: 1}, nil, nil)
	require.ErrorIs(t, err, domain.ErrPrimeGenerationFailed)
	assert.Equal(t, []int{2, 3, 4}, runs.ran())
	assert.Equal(t, 2, sum.Completed)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 4, sum.Skipped)
}

func TestRunner_CancelledContext(t *testing.T) {
	runs := &fakeRuns{}
	r := sweep.NewRunner(runs, 2, false, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := r.Run(ctx, sweep.Plan{From: 2, To: 9, Step: 1}, nil, nil)
	require.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, runs.ran())
	assert.Equal(t, 8, sum.Skipped)
}

func TestRunner_InvalidPlan(t *testing.T) {
	r := sweep.NewRunner(&fakeRuns{}, 0, false, zerolog.Nop())
	_, err := r.Run(context.Background(), sweep.Plan{From: 0, To: 4, Step: 1}, nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidBitLength)
}
