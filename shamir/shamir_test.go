package shamir

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func share(x, y int64) *Share {
	return &Share{X: big.NewInt(x), Y: big.NewInt(y)}
}

// evalPoly evaluates the polynomial with the given coefficients (constant
// term first) at x, via Horner's method.
func evalPoly(coeffs []*big.Int, x *big.Int) *big.Int {
	y := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, coeffs[i])
	}
	return y
}

// randCoeffs draws k random 256-bit coefficients, roughly half of them
// negative.
func randCoeffs(t *testing.T, k int) []*big.Int {
	t.Helper()
	bound := new(big.Int).Lsh(big.NewInt(1), 256)
	coeffs := make([]*big.Int, k)
	for i := range coeffs {
		c, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)
		if c.Bit(0) == 1 {
			c.Neg(c)
		}
		coeffs[i] = c
	}
	return coeffs
}

func TestInterpolateAtZero(t *testing.T) {
	t.Run("sample quadratic", func(t *testing.T) {
		// P(x) = x^2 + 3 evaluated at x = 1, 2, 3.
		secret, err := InterpolateAtZero([]*Share{share(1, 4), share(2, 7), share(3, 12)})
		require.NoError(t, err)
		assert.Equal(t, 0, big.NewInt(3).Cmp(secret))
	})

	t.Run("line", func(t *testing.T) {
		// P(x) = 3x + 2.
		secret, err := InterpolateAtZero([]*Share{share(1, 5), share(2, 8)})
		require.NoError(t, err)
		assert.Equal(t, 0, big.NewInt(2).Cmp(secret))
	})

	t.Run("single share is the constant", func(t *testing.T) {
		secret, err := InterpolateAtZero([]*Share{share(1, -5)})
		require.NoError(t, err)
		assert.Equal(t, 0, big.NewInt(-5).Cmp(secret))
	})

	t.Run("share at x zero pins the constant", func(t *testing.T) {
		secret, err := InterpolateAtZero([]*Share{share(0, 42), share(1, 50), share(2, 60)})
		require.NoError(t, err)
		assert.Equal(t, 0, big.NewInt(42).Cmp(secret))
	})

	t.Run("random polynomial round trip", func(t *testing.T) {
		for trial := 0; trial < 10; trial++ {
			k := 2 + trial
			coeffs := randCoeffs(t, k)

			shares := make([]*Share, k)
			for i := range shares {
				x := big.NewInt(int64(i + 1))
				shares[i] = &Share{X: x, Y: evalPoly(coeffs, x)}
			}

			secret, err := InterpolateAtZero(shares)
			require.NoError(t, err)
			assert.Equal(t, 0, coeffs[0].Cmp(secret), "trial %d: got %s, want %s", trial, secret, coeffs[0])
		}
	})

	t.Run("share order does not change the result", func(t *testing.T) {
		shares := []*Share{share(1, 4), share(2, 7), share(3, 12)}
		reversed := []*Share{share(3, 12), share(2, 7), share(1, 4)}

		a, err := InterpolateAtZero(shares)
		require.NoError(t, err)
		b, err := InterpolateAtZero(reversed)
		require.NoError(t, err)
		assert.Equal(t, 0, a.Cmp(b))
	})
}

func TestInterpolateAtZeroErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := InterpolateAtZero(nil)
		assert.ErrorIs(t, err, ErrNoShares)
	})

	t.Run("duplicate x different y", func(t *testing.T) {
		_, err := InterpolateAtZero([]*Share{share(2, 7), share(2, 9)})
		assert.ErrorIs(t, err, ErrDuplicateX)
	})

	t.Run("duplicate x same y", func(t *testing.T) {
		_, err := InterpolateAtZero([]*Share{share(2, 7), share(2, 7), share(3, 1)})
		assert.ErrorIs(t, err, ErrDuplicateX)
	})

	t.Run("non-integer result", func(t *testing.T) {
		// (1,1), (2,2), (4,3) interpolate to P(0) = -1/3.
		_, err := InterpolateAtZero([]*Share{share(1, 1), share(2, 2), share(4, 3)})
		require.Error(t, err)

		var nie *NonIntegerError
		require.True(t, errors.As(err, &nie))
		assert.Equal(t, 0, big.NewInt(-1).Cmp(nie.Num))
		assert.Equal(t, 0, big.NewInt(3).Cmp(nie.Den))
	})
}

func TestInterpolateAtZeroVerified(t *testing.T) {
	// P(x) = x^2 + 3; x = 6 gives 39.
	consistent := []*Share{share(1, 4), share(2, 7), share(3, 12), share(6, 39)}

	t.Run("consistent surplus share", func(t *testing.T) {
		secret, err := InterpolateAtZeroVerified(consistent, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, big.NewInt(3).Cmp(secret))
	})

	t.Run("exactly k shares", func(t *testing.T) {
		secret, err := InterpolateAtZeroVerified(consistent[:3], 3)
		require.NoError(t, err)
		assert.Equal(t, 0, big.NewInt(3).Cmp(secret))
	})

	t.Run("surplus share off the polynomial", func(t *testing.T) {
		// (1,4), (2,7), (6,49) still interpolate to an integer, but the
		// wrong one, so the cross-check has to flag it.
		tampered := []*Share{share(1, 4), share(2, 7), share(3, 12), share(6, 49)}
		_, err := InterpolateAtZeroVerified(tampered, 3)
		assert.ErrorIs(t, err, ErrInconsistentShares)
	})

	t.Run("surplus share breaks integrality", func(t *testing.T) {
		tampered := []*Share{share(1, 4), share(2, 7), share(3, 12), share(6, 40)}
		_, err := InterpolateAtZeroVerified(tampered, 3)
		require.Error(t, err)

		var nie *NonIntegerError
		assert.True(t, errors.As(err, &nie))
	})

	t.Run("threshold below one", func(t *testing.T) {
		_, err := InterpolateAtZeroVerified(consistent, 0)
		assert.Error(t, err)
	})

	t.Run("too few shares", func(t *testing.T) {
		_, err := InterpolateAtZeroVerified(consistent[:2], 3)
		assert.ErrorIs(t, err, ErrInsufficientShares)
	})

	t.Run("duplicate x among surplus", func(t *testing.T) {
		dup := []*Share{share(1, 4), share(2, 7), share(3, 12), share(3, 12)}
		_, err := InterpolateAtZeroVerified(dup, 3)
		assert.ErrorIs(t, err, ErrDuplicateX)
	})
}

// TestSelectionInvariance checks that any k-subset of a consistent share set
// recovers the same constant, not just the first k.
func TestSelectionInvariance(t *testing.T) {
	const k = 4
	coeffs := randCoeffs(t, k)

	shares := make([]*Share, k+3)
	for i := range shares {
		x := big.NewInt(int64(i + 1))
		shares[i] = &Share{X: x, Y: evalPoly(coeffs, x)}
	}

	// Walk every contiguous window plus a couple of scattered subsets.
	for start := 0; start+k <= len(shares); start++ {
		secret, err := InterpolateAtZero(shares[start : start+k])
		require.NoError(t, err)
		assert.Equal(t, 0, coeffs[0].Cmp(secret), "window at %d", start)
	}

	scattered := []*Share{shares[0], shares[2], shares[4], shares[6]}
	secret, err := InterpolateAtZero(scattered)
	require.NoError(t, err)
	assert.Equal(t, 0, coeffs[0].Cmp(secret))
}
