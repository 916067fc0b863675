package si

import "fmt"

// Coherent is a typed quantity of dimension B expressed in B's coherent
// SI unit. It is the working representation of typed arithmetic: Measures
// promote to Coherent, operators combine Coherents, and results re-wrap
// into display units explicitly. The zero value is zero in B's dimension.
type Coherent[B Base] struct {
	v Float
}

// NewCoherent returns a coherent quantity of dimension B from a value
// already expressed in B's coherent unit.
func NewCoherent[B Base](v Float) Coherent[B] {
	return Coherent[B]{v: v}
}

// Value returns the coherent SI value.
func (c Coherent[B]) Value() Float { return c.v }

// Dim returns B's dimension vector.
func (c Coherent[B]) Dim() Dim { return dimOf[B]() }

// Quantity converts c to the dynamic layer.
func (c Coherent[B]) Quantity() Quantity { return Quantity{d: dimOf[B](), v: c.v} }

// Add returns c+d.
func (c Coherent[B]) Add(d Coherent[B]) Coherent[B] { return Coherent[B]{v: c.v + d.v} }

// Sub returns c-d.
func (c Coherent[B]) Sub(d Coherent[B]) Coherent[B] { return Coherent[B]{v: c.v - d.v} }

// Cmp compares values, returning -1, 0 or 1. Together with Equal it
// covers all six relational operators; both exist only between quantities
// of one dimension.
func (c Coherent[B]) Cmp(d Coherent[B]) int {
	switch {
	case c.v < d.v:
		return -1
	case c.v > d.v:
		return 1
	}
	return 0
}

// Equal reports c == d.
func (c Coherent[B]) Equal(d Coherent[B]) bool { return c.v == d.v }

// Less reports c < d.
func (c Coherent[B]) Less(d Coherent[B]) bool { return c.v < d.v }

// Greater reports c > d.
func (c Coherent[B]) Greater(d Coherent[B]) bool { return c.v > d.v }

func (c Coherent[B]) String() string { return c.Quantity().String() }

// As checks a dynamic quantity against marker B and re-enters the typed
// layer. It is how Mul, Div, Pow and Sqrt results regain a static
// dimension:
//
//	force, err := si.As[si.Force](si.Mul(mass, acceleration))
//
// The returned error wraps ErrDimensionMismatch when q's dimension is not
// B's.
func As[B Base](q Quantiter) (Coherent[B], error) {
	qq := q.Quantity()
	if want := dimOf[B](); qq.d != want {
		return Coherent[B]{}, fmt.Errorf("%w: have %v, want %v", ErrDimensionMismatch, qq.d, want)
	}
	return Coherent[B]{v: qq.v}, nil
}

// MustAs is As, panicking on dimension mismatch.
func MustAs[B Base](q Quantiter) Coherent[B] {
	c, err := As[B](q)
	if err != nil {
		panic(err)
	}
	return c
}

// AsScalar returns the value of a dimensionless quantity. The returned
// error wraps ErrDimensionMismatch when q is not scalar.
func AsScalar(q Quantiter) (Float, error) {
	qq := q.Quantity()
	if !qq.IsScalar() {
		return 0, fmt.Errorf("%w: have %v, want scalar", ErrDimensionMismatch, qq.d)
	}
	return qq.v, nil
}

// Apply returns f applied to a dimensionless quantity. The argument type
// makes applying a transcendental function to a non-scalar a compile
// error; Quantity.Apply is the dynamic-layer equivalent.
func Apply(f func(Float) Float, c Coherent[Dimensionless]) Coherent[Dimensionless] {
	return Coherent[Dimensionless]{v: f(c.v)}
}
