// Package digits converts between arbitrary-base numeral strings and
// arbitrary-precision integers. Bases 2 through 36 are supported, with the
// usual 0-9 then A-Z digit alphabet, case-insensitive.
package digits

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// MinBase and MaxBase bound the numeral bases Parse and Format accept.
const (
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrBaseOutOfRange is returned when a base falls outside [MinBase, MaxBase].
	ErrBaseOutOfRange = errors.New("base out of range")

	// ErrInvalidDigit is returned when a character is not a recognized digit
	// (0-9, A-Z).
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrDigitOutOfRange is returned when a digit's value is not below the base,
	// e.g. '7' in base 4.
	ErrDigitOutOfRange = errors.New("digit out of range for base")

	// ErrEmptyDigits is returned when the input contains no digits at all.
	ErrEmptyDigits = errors.New("empty digit string")
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// digitValue maps a digit character to its numeric value, or -1 when the
// character is outside the alphabet.
func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// Parse reads s as a base-b numeral, most-significant digit first, and
// returns its value. Surrounding whitespace is ignored. Accumulation is
// Horner's method (result = result*base + digit) over big.Int, so the value
// may grow without bound.
func Parse(s string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrBaseOutOfRange, base, MinBase, MaxBase)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyDigits
	}

	result := new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)
	for _, c := range s {
		v := digitValue(c)
		if v < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}
		if v >= base {
			return nil, fmt.Errorf("%w: %q in base %d", ErrDigitOutOfRange, c, base)
		}
		result.Mul(result, b)
		result.Add(result, d.SetInt64(int64(v)))
	}
	return result, nil
}

// Format renders a non-negative value as a base-b numeral using the same
// alphabet Parse reads (upper-case letters for values 10..35). It is the
// inverse of Parse.
func Format(v *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", fmt.Errorf("%w: %d (want %d..%d)", ErrBaseOutOfRange, base, MinBase, MaxBase)
	}
	if v.Sign() < 0 {
		return "", fmt.Errorf("cannot format negative value %s", v)
	}
	if v.Sign() == 0 {
		return "0", nil
	}

	b := big.NewInt(int64(base))
	rem := new(big.Int)
	n := new(big.Int).Set(v)
	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, b, rem)
		out = append(out, alphabet[rem.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
