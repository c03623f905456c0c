package keys_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elgamal/internal/domain"
	"elgamal/internal/keys"
)

var small = domain.Parameters{P: big.NewInt(467), G: big.NewInt(2)}

func TestGenerate_Range(t *testing.T) {
	gen := keys.New(rand.Reader)
	for i := 0; i < 200; i++ {
		kp, err := gen.Generate(small)
		require.NoError(t, err)
		require.True(t, kp.Private.Sign() > 0)
		require.True(t, kp.Private.Cmp(big.NewInt(465)) <= 0)
		want := new(big.Int).Exp(small.G, kp.Private, small.P)
		require.Zero(t, want.Cmp(kp.Public))
	}
}

func TestFromPrivate_ConcreteScenario(t *testing.T) {
	kp, err := keys.FromPrivate(small, big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, int64(8), kp.Public.Int64())
}

func TestFromPrivate_OutOfRange(t *testing.T) {
	for _, a := range []int64{0, -1, 466, 467} {
		_, err := keys.FromPrivate(small, big.NewInt(a))
		require.ErrorIs(t, err, domain.ErrInvalidParameters, "a=%d", a)
	}
}

func TestGenerate_MissingParams(t *testing.T) {
	_, err := keys.Generate(rand.Reader, domain.Parameters{})
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestWipe(t *testing.T) {
	kp, err := keys.Generate(rand.Reader, small)
	require.NoError(t, err)
	kp.Wipe()
	assert.Nil(t, kp.Private)
	assert.NotNil(t, kp.Public)
}
