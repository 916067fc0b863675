package si

import "errors"

var (
	errDegenerateUnit = errors.New("si: degenerate unit derivation: multiplier 1 and offset 0")
	errZeroMultiplier = errors.New("si: unit multiplier is zero")
)

// Base is the sealed set of dimension markers the typed layer is generic
// over. One marker exists per distinct dimension vector in the catalog;
// all are generated into catalog.go by unitgen. Two typed quantities
// interoperate for addition, comparison and conversion only when they
// name the same marker, so mixing dimensions fails to compile. Quantities
// of a dimension outside the catalog live on the dynamic layer as
// Quantity values.
type Base interface {
	// Dim returns the dimension vector the marker stands for.
	Dim() Dim
	base()
}

// dimOf returns the dimension vector of marker B.
func dimOf[B Base]() Dim {
	var b B
	return b.Dim()
}

// Unit is a named unit of the dimension marked by B: an affine map
// relating a value displayed in the unit to the coherent SI value,
//
//	coherent = displayed·multiplier + offset
//
// The coherent unit of a dimension comes from BaseUnit; every other unit
// is built from an existing one with Derive. The SI catalog in catalog.go
// covers common needs.
type Unit[B Base] struct {
	sym string
	mul Float
	off Float
}

// BaseUnit returns the coherent unit of B's dimension, with multiplier 1
// and offset 0. symbol is the display suffix, "s" for the second.
func BaseUnit[B Base](symbol string) Unit[B] {
	return Unit[B]{sym: symbol, mul: 1}
}

// Derive defines a new unit of the same dimension in terms of u. The new
// unit's effective multiplier is u's multiplier times mul, and its
// effective offset is u's offset plus add·mul, so a chain like
// hour→minute→second or °F→°C→K always reduces to a single affine map
// against the coherent unit:
//
//	Kelvin.Derive("°C", 1, 273.15)          // coherent = v + 273.15
//	DegreeCelsius.Derive("°F", 1/1.8, -32)  // coherent = (v-32)/1.8 + 273.15
//
// Derive panics if mul is zero, or if the derivation is degenerate
// (mul 1 and add 0), which would alias u instead of defining a unit.
func (u Unit[B]) Derive(symbol string, mul, add Float) Unit[B] {
	if mul == 0 {
		panic(errZeroMultiplier)
	}
	if mul == 1 && add == 0 {
		panic(errDegenerateUnit)
	}
	return Unit[B]{sym: symbol, mul: u.mul * mul, off: u.off + add*mul}
}

// Symbol returns the unit's display suffix.
func (u Unit[B]) Symbol() string { return u.sym }

// Multiplier returns the unit's effective multiplier against the coherent
// unit.
func (u Unit[B]) Multiplier() Float { return u.mul }

// Offset returns the unit's effective offset against the coherent unit.
func (u Unit[B]) Offset() Float { return u.off }

// Dim returns the dimension vector of the unit's marker.
func (u Unit[B]) Dim() Dim { return dimOf[B]() }

// Of returns a measure of v in unit u with no prefix.
func (u Unit[B]) Of(v Float) Measure[B] { return New(v, NoPrefix, u) }

// From re-expresses a coherent quantity as a measure in unit u under
// prefix p, inverting the affine map. Quantities of any other dimension
// do not compile; use As first to check a dynamic Quantity.
func (u Unit[B]) From(p Prefix, c Coherent[B]) Measure[B] {
	v := (c.v - u.off) / u.mul * pow10(-int(p))
	return Measure[B]{v: v, p: p, u: u, c: c}
}
