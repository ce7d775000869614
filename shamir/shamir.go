// Package shamir reconstructs the constant term of an integer-valued
// polynomial from a threshold of its evaluation points, using Lagrange
// interpolation at x = 0 over exact rational arithmetic. Unlike the usual
// finite-field formulation there is no modulus: shares are points of a
// polynomial over the integers, and the recovered secret is exact no matter
// how large it grows.
package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/mbellotti/polyrecover/rational"
)

// Share represents one evaluation (x, P(x)) of the secret polynomial.
// Shares are immutable once built.
type Share struct {
	X *big.Int
	Y *big.Int
}

var (
	// ErrNoShares is returned when an empty share set is handed to the engine.
	ErrNoShares = errors.New("no shares provided")

	// ErrDuplicateX is returned when two shares carry the same x-coordinate,
	// which would put a zero in a Lagrange basis denominator.
	ErrDuplicateX = errors.New("duplicate x-coordinate")

	// ErrInsufficientShares is returned when fewer shares are available than
	// the reconstruction threshold requires.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrInconsistentShares is returned by InterpolateAtZeroVerified when a
	// share beyond the threshold does not lie on the polynomial determined by
	// the selected ones.
	ErrInconsistentShares = errors.New("shares disagree on the constant term")
)

// NonIntegerError reports an interpolation whose result is not an integer:
// the shares are not k points of a common integer-valued polynomial of degree
// k-1 (wrong threshold, corrupted share, or mismatched x-values). Num and Den
// hold the accumulator's final numerator and denominator, in lowest terms.
type NonIntegerError struct {
	Num *big.Int
	Den *big.Int
}

func (e *NonIntegerError) Error() string {
	return fmt.Sprintf("interpolated value %s/%s is not an integer", e.Num, e.Den)
}

// InterpolateAtZero computes P(0) = Σᵢ yᵢ·Lᵢ(0) over the given shares, where
// Lᵢ(0) = Πⱼ≠ᵢ (0−xⱼ)/(xᵢ−xⱼ). Every intermediate value is an exact reduced
// fraction; each multiplication reduces by the gcd immediately, which keeps
// the basis products from growing without bound as the share count rises.
// The j-loop follows slice order, so reduction behavior is repeatable for a
// given input order.
func InterpolateAtZero(shares []*Share) (*big.Int, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	if err := checkDistinctX(shares); err != nil {
		return nil, err
	}

	total := rational.Zero()
	for i, si := range shares {
		basis := rational.One()
		for j, sj := range shares {
			if i == j {
				continue
			}
			num := new(big.Int).Neg(sj.X)
			den := new(big.Int).Sub(si.X, sj.X)
			basis = basis.Mul(rational.New(num, den))
		}
		term := basis.Mul(rational.FromInt(si.Y))
		total = total.Add(term)
	}

	if !total.IsInt() {
		return nil, &NonIntegerError{Num: total.Num, Den: total.Den}
	}
	return total.Int(), nil
}

// InterpolateAtZeroVerified reconstructs the constant from the first k shares
// and then cross-checks every surplus share: each one, substituted into the
// selected subset, must reproduce the same constant. This catches a corrupted
// share beyond the threshold that plain first-k selection would silently
// ignore. It costs one extra interpolation per surplus share.
func InterpolateAtZeroVerified(shares []*Share, k int) (*big.Int, error) {
	if k < 1 {
		return nil, fmt.Errorf("threshold must be at least 1, got %d", k)
	}
	if len(shares) < k {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientShares, k, len(shares))
	}
	if err := checkDistinctX(shares); err != nil {
		return nil, err
	}

	secret, err := InterpolateAtZero(shares[:k])
	if err != nil {
		return nil, err
	}

	subset := make([]*Share, k)
	copy(subset, shares[:k])
	for _, extra := range shares[k:] {
		subset[k-1] = extra
		alt, err := InterpolateAtZero(subset)
		if err != nil {
			return nil, err
		}
		if alt.Cmp(secret) != 0 {
			return nil, fmt.Errorf("%w: including x=%s yields %s, expected %s",
				ErrInconsistentShares, extra.X, alt, secret)
		}
	}
	return secret, nil
}

// checkDistinctX rejects share sets with a repeated x-coordinate before any
// Lagrange denominator is formed.
func checkDistinctX(shares []*Share) error {
	seen := make(map[string]struct{}, len(shares))
	for _, s := range shares {
		key := s.X.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: x=%s", ErrDuplicateX, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
