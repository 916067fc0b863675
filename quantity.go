package si

import (
	"errors"

	"github.com/soypat/si/rational"
)

// ErrDimensionMismatch is the panic value of dynamic-layer operations
// over quantities whose dimensions differ and the error cause returned by
// As and AsScalar. Mixing dimensions in Add, Sub, Cmp or Apply is a bug
// in the calling program, which is why those panic rather than return it.
var ErrDimensionMismatch = errors.New("si: mismatched dimensions")

// Quantity is a quantity whose dimension is carried at runtime rather
// than in its type. It is the result of multiplication, division and
// exponentiation, operations whose result dimension no fixed Go type can
// express; use As or MustAs to re-enter the typed layer. The value is
// always in coherent SI units. The zero value is a dimensionless zero.
type Quantity struct {
	d Dim
	v Float
}

// Quantiter is satisfied by every quantity in this package: Quantity
// itself, Coherent and Measure. Operations that accept operands of any
// dimension take a Quantiter.
type Quantiter interface {
	Quantity() Quantity
}

// NewQuantity returns a quantity of dimension d whose value v is already
// expressed in the coherent SI unit.
func NewQuantity(v Float, d Dim) Quantity {
	return Quantity{d: d, v: v}
}

// Quantity implements Quantiter.
func (q Quantity) Quantity() Quantity { return q }

// Value returns the coherent SI value of q.
func (q Quantity) Value() Float { return q.v }

// Dim returns the dimension vector of q.
func (q Quantity) Dim() Dim { return q.d }

// IsScalar reports whether q is dimensionless.
func (q Quantity) IsScalar() bool { return q.d.IsZero() }

// Add returns q+r. It panics if the dimensions differ.
func (q Quantity) Add(r Quantity) Quantity {
	if q.d != r.d {
		panic(ErrDimensionMismatch)
	}
	return Quantity{d: q.d, v: q.v + r.v}
}

// Sub returns q-r. It panics if the dimensions differ.
func (q Quantity) Sub(r Quantity) Quantity {
	if q.d != r.d {
		panic(ErrDimensionMismatch)
	}
	return Quantity{d: q.d, v: q.v - r.v}
}

// Cmp compares the values of two quantities of identical dimension,
// returning -1, 0 or 1. It panics if the dimensions differ.
func (q Quantity) Cmp(r Quantity) int {
	if q.d != r.d {
		panic(ErrDimensionMismatch)
	}
	switch {
	case q.v < r.v:
		return -1
	case q.v > r.v:
		return 1
	}
	return 0
}

// Equal reports whether q and r have identical dimension and value. It
// does not panic on mismatched dimensions; they are simply not equal.
func (q Quantity) Equal(r Quantity) bool {
	return q.d == r.d && q.v == r.v
}

// Apply returns f applied to the value of a dimensionless quantity and
// panics otherwise: transcendental functions are not dimensionally
// meaningful on non-scalars. The package-level Apply enforces the same
// precondition at compile time.
func (q Quantity) Apply(f func(Float) Float) Quantity {
	if !q.IsScalar() {
		panic(ErrDimensionMismatch)
	}
	return Quantity{v: f(q.v)}
}

func (q Quantity) String() string {
	if q.d.IsZero() {
		return formatFloat(q.v)
	}
	return formatFloat(q.v) + " " + q.d.String()
}

// Mul returns the product of two quantities of any dimensions. The result
// dimension is the component-wise sum of the operand dimensions.
func Mul(a, b Quantiter) Quantity {
	qa, qb := a.Quantity(), b.Quantity()
	return Quantity{d: qa.d.Add(qb.d), v: qa.v * qb.v}
}

// Div returns the quotient of two quantities of any dimensions. The
// result dimension is the component-wise difference of the operand
// dimensions.
func Div(a, b Quantiter) Quantity {
	qa, qb := a.Quantity(), b.Quantity()
	return Quantity{d: qa.d.Sub(qb.d), v: qa.v / qb.v}
}

// Pow raises a quantity to an exact rational power. The result dimension
// is the operand's scaled component-wise by exp; the value is the
// floating-point power.
func Pow(a Quantiter, exp rational.R64) Quantity {
	q := a.Quantity()
	return Quantity{d: q.d.Pow(exp), v: powf(q.v, Float(exp.Float()))}
}

// Sqrt is Pow with exponent 1/2.
func Sqrt(a Quantiter) Quantity {
	return Pow(a, rational.New(1, 2))
}
