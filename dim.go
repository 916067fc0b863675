package si

import (
	"strings"

	"github.com/soypat/si/rational"
)

// Dim is a dimension vector: the exponent of each of the seven SI base
// dimensions in the canonical order time, length, mass, electric current,
// temperature, amount of substance, luminous intensity. It is the
// fingerprint deciding which quantities interoperate: addition,
// subtraction, comparison and unit conversion require identical Dim,
// compared with ==. The zero value is dimensionless.
type Dim [7]rational.R64

const (
	axisTime = iota
	axisLength
	axisMass
	axisCurrent
	axisTemperature
	axisAmount
	axisLuminous
)

var axisSymbol = [7]string{"s", "m", "kg", "A", "K", "mol", "cd"}

// NewDim returns the dimension vector with the given integer exponents in
// canonical order. Fractional exponents only arise from Pow and Sqrt.
func NewDim(time, length, mass, current, temperature, amount, luminous int) Dim {
	return Dim{
		rational.FromInt(time),
		rational.FromInt(length),
		rational.FromInt(mass),
		rational.FromInt(current),
		rational.FromInt(temperature),
		rational.FromInt(amount),
		rational.FromInt(luminous),
	}
}

// Add returns the component-wise sum of d and e, the dimension of a
// product of quantities.
func (d Dim) Add(e Dim) Dim {
	for i := range d {
		d[i] = d[i].Add(e[i])
	}
	return d
}

// Sub returns the component-wise difference of d and e, the dimension of
// a quotient of quantities.
func (d Dim) Sub(e Dim) Dim {
	for i := range d {
		d[i] = d[i].Sub(e[i])
	}
	return d
}

// Pow returns d with every exponent multiplied by exp.
func (d Dim) Pow(exp rational.R64) Dim {
	for i := range d {
		d[i] = d[i].Mul(exp)
	}
	return d
}

// IsZero reports whether every exponent is zero, i.e. d is the dimension
// of a pure number.
func (d Dim) IsZero() bool { return d == Dim{} }

// String formats the nonzero axes in canonical order, such as
// "s^-2 m kg" for force or "m^1/2" for a square root of length.
// The dimensionless vector formats as "1".
func (d Dim) String() string {
	if d.IsZero() {
		return "1"
	}
	one := rational.FromInt(1)
	var sb strings.Builder
	for i, e := range d {
		if e.IsZero() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(axisSymbol[i])
		if e != one {
			sb.WriteByte('^')
			sb.WriteString(e.String())
		}
	}
	return sb.String()
}
