// Package rational implements exact rational numbers sized for
// dimensional exponents. Values are normalized on construction so that
// equal fractions compare equal with ==.
package rational

import (
	"errors"
	"strconv"
)

var (
	errNonPositiveDenominator = errors.New("rational: non-positive denominator")
	errOverflow               = errors.New("rational: overflow")
)

// R64 is an exact fraction stored in 64 bits. The zero value is 0/1.
// R64 values are comparable: construction reduces the fraction and keeps
// the denominator positive, so two R64 are numerically equal iff ==.
type R64 struct {
	num         int32
	denMinusOne int32
}

// New returns the reduced fraction numerator/denominator.
// It panics if denominator is not positive.
func New(numerator, denominator int) R64 {
	if denominator <= 0 {
		panic(errNonPositiveDenominator)
	}
	return reduce(int64(numerator), int64(denominator))
}

// FromInt returns n as a rational n/1.
func FromInt(n int) R64 {
	return New(n, 1)
}

func reduce(num, den int64) R64 {
	if num == 0 {
		return R64{}
	}
	d := gcd(num, den)
	num /= d
	den /= d
	if num > 1<<31-1 || num < -(1<<31) || den > 1<<31 {
		panic(errOverflow)
	}
	return R64{num: int32(num), denMinusOne: int32(den) - 1}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Fraction returns the numerator and denominator of r.
// The denominator is always positive.
func (r R64) Fraction() (numerator, denominator int) {
	return int(r.num), int(r.denMinusOne) + 1
}

// IsZero reports whether r is the zero fraction.
func (r R64) IsZero() bool { return r.num == 0 }

// Add returns r+q.
func (r R64) Add(q R64) R64 {
	rn, rd := int64(r.num), int64(r.denMinusOne)+1
	qn, qd := int64(q.num), int64(q.denMinusOne)+1
	return reduce(rn*qd+qn*rd, rd*qd)
}

// Sub returns r-q.
func (r R64) Sub(q R64) R64 {
	return r.Add(q.Neg())
}

// Mul returns r*q.
func (r R64) Mul(q R64) R64 {
	rn, rd := int64(r.num), int64(r.denMinusOne)+1
	qn, qd := int64(q.num), int64(q.denMinusOne)+1
	return reduce(rn*qn, rd*qd)
}

// Neg returns -r.
func (r R64) Neg() R64 {
	return R64{num: -r.num, denMinusOne: r.denMinusOne}
}

// Float evaluates r as a floating point quotient.
func (r R64) Float() float64 {
	return float64(r.num) / float64(r.denMinusOne+1)
}

func (r R64) String() string {
	num, den := r.Fraction()
	if den == 1 {
		return strconv.Itoa(num)
	}
	return strconv.Itoa(num) + "/" + strconv.Itoa(den)
}
