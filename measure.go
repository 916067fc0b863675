package si

// Measure is a quantity displayed in a particular prefix and unit of
// dimension B: the user-facing wrapper. It stores both the displayed
// value and the equivalent coherent quantity, always consistent under
//
//	coherent = displayed·10^prefix·multiplier + offset
//
// Add, Sub and the comparisons accept any two Measures of one dimension
// regardless of prefix or unit and work on the coherent values;
// dimension-changing operators (Mul, Div, Pow, Sqrt) accept Measures
// through Quantiter. Results re-wrap explicitly via Convert, Unit.From or
// As.
type Measure[B Base] struct {
	v Float
	p Prefix
	u Unit[B]
	c Coherent[B]
}

// New returns a measure of v in prefix p and unit u and computes its
// coherent equivalent. New(10, Milli, Second) is ten milliseconds.
func New[B Base](v Float, p Prefix, u Unit[B]) Measure[B] {
	c := Coherent[B]{v: v*p.Factor()*u.mul + u.off}
	return Measure[B]{v: v, p: p, u: u, c: c}
}

// Convert re-expresses m in another prefix and unit of the same
// dimension:
//
//	minutes := si.Convert(si.New(5000, si.Milli, si.Second), si.NoPrefix, si.Minute)
//
// Converting to a unit of a different dimension does not compile.
func Convert[B Base](m Measure[B], p Prefix, to Unit[B]) Measure[B] {
	return to.From(p, m.c)
}

// Value returns the displayed magnitude in m's prefix and unit.
func (m Measure[B]) Value() Float { return m.v }

// Prefix returns the display prefix.
func (m Measure[B]) Prefix() Prefix { return m.p }

// Unit returns the display unit.
func (m Measure[B]) Unit() Unit[B] { return m.u }

// Coherent returns the equivalent coherent quantity.
func (m Measure[B]) Coherent() Coherent[B] { return m.c }

// Quantity converts m to the dynamic layer.
func (m Measure[B]) Quantity() Quantity { return m.c.Quantity() }

// Dim returns B's dimension vector.
func (m Measure[B]) Dim() Dim { return dimOf[B]() }

// Add returns the coherent sum of two measures of one dimension,
// whatever their prefixes and units.
func (m Measure[B]) Add(n Measure[B]) Coherent[B] { return m.c.Add(n.c) }

// Sub returns the coherent difference of two measures of one dimension.
func (m Measure[B]) Sub(n Measure[B]) Coherent[B] { return m.c.Sub(n.c) }

// Cmp compares coherent values, returning -1, 0 or 1.
func (m Measure[B]) Cmp(n Measure[B]) int { return m.c.Cmp(n.c) }

// Equal reports whether m and n denote the same coherent value.
func (m Measure[B]) Equal(n Measure[B]) bool { return m.c.Equal(n.c) }

// Less reports whether m's coherent value is less than n's.
func (m Measure[B]) Less(n Measure[B]) bool { return m.c.Less(n.c) }

// Greater reports whether m's coherent value is greater than n's.
func (m Measure[B]) Greater(n Measure[B]) bool { return m.c.Greater(n.c) }

// String formats the displayed value followed by the prefix and unit
// symbols, as in "10ms" or "-450.67°F".
func (m Measure[B]) String() string {
	return formatFloat(m.v) + m.p.String() + m.u.sym
}
