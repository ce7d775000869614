// Package rational implements exact arithmetic over fractions of
// arbitrary-precision integers. Every Fraction is kept in lowest terms with a
// positive denominator, so intermediate values stay as small as the
// mathematics allows and an integer is recognizable by its denominator
// being 1. No floating-point representation appears anywhere.
package rational

import (
	"fmt"
	"math/big"
)

var bigOne = big.NewInt(1)

// Fraction is an immutable value Num/Den in lowest terms. Den is always
// positive; the sign lives on Num. Build one with New, Zero or One; the zero
// struct is not a valid Fraction.
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

// Gcd returns the greatest common divisor of |a| and |b| via the Euclidean
// algorithm. The result is non-negative. Gcd(0, 0) is 0; callers must not
// divide by it.
func Gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// New returns num/den reduced to lowest terms with the sign normalized onto
// the numerator. A zero numerator normalizes straight to 0/1, which also
// keeps Gcd away from the (0, 0) case. den must be non-zero; a zero
// denominator is a caller bug and panics, the same contract as
// big.Rat.SetFrac.
func New(num, den *big.Int) Fraction {
	if den.Sign() == 0 {
		panic("rational: zero denominator")
	}
	if num.Sign() == 0 {
		return Fraction{Num: new(big.Int), Den: big.NewInt(1)}
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if g := Gcd(n, d); g.Cmp(bigOne) > 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Fraction{Num: n, Den: d}
}

// FromInt returns v/1.
func FromInt(v *big.Int) Fraction {
	return Fraction{Num: new(big.Int).Set(v), Den: big.NewInt(1)}
}

// Zero returns the fraction 0/1.
func Zero() Fraction {
	return Fraction{Num: new(big.Int), Den: big.NewInt(1)}
}

// One returns the fraction 1/1.
func One() Fraction {
	return Fraction{Num: big.NewInt(1), Den: big.NewInt(1)}
}

// Add returns f + g as a new reduced Fraction, via the cross-multiplied sum
// (f.Num·g.Den + g.Num·f.Den) / (f.Den·g.Den).
func (f Fraction) Add(g Fraction) Fraction {
	num := new(big.Int).Mul(f.Num, g.Den)
	num.Add(num, new(big.Int).Mul(g.Num, f.Den))
	den := new(big.Int).Mul(f.Den, g.Den)
	return New(num, den)
}

// Mul returns f × g as a new reduced Fraction.
func (f Fraction) Mul(g Fraction) Fraction {
	num := new(big.Int).Mul(f.Num, g.Num)
	den := new(big.Int).Mul(f.Den, g.Den)
	return New(num, den)
}

// IsInt reports whether f is an integer, i.e. its reduced denominator is 1.
func (f Fraction) IsInt() bool {
	return f.Den.Cmp(bigOne) == 0
}

// Int returns the integer value of f as a fresh big.Int. It panics when f is
// not an integer; check IsInt first.
func (f Fraction) Int() *big.Int {
	if !f.IsInt() {
		panic(fmt.Sprintf("rational: %s is not an integer", f))
	}
	return new(big.Int).Set(f.Num)
}

// String renders f as "num/den", or just "num" when f is an integer.
func (f Fraction) String() string {
	if f.IsInt() {
		return f.Num.String()
	}
	return f.Num.String() + "/" + f.Den.String()
}
