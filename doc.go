// Package si implements dimensional analysis over the seven SI base
// dimensions with exact rational exponents.
//
// Quantities come in two layers sharing one numeric substrate. The typed
// layer — Coherent, Measure and Unit, generic over the dimension markers
// in the catalog — rejects mixed-dimension addition, comparison and
// conversion at compile time:
//
//	a := si.New(10, si.Milli, si.Second)
//	b := si.New(20000, si.Micro, si.Second)
//	sum := a.Add(b)                            // 0.03 s, coherent
//	_ = si.Convert(a, si.NoPrefix, si.Minute)  // same quantity in minutes
//	// a.Add(si.Metre.Of(1))                   // does not compile
//
// Multiplication, division, powers and roots change the dimension, which
// no fixed Go type can express, so they return a dynamic Quantity that
// carries its dimension vector at runtime and re-enters the typed layer
// through an explicit check:
//
//	q := si.Mul(si.Kilogram.Of(2), si.MetrePerSecondSquared.Of(9.8))
//	force, err := si.As[si.Force](q)
//
// All arithmetic happens on coherent SI values; prefixes and affine unit
// maps (minutes, °C, °F) fold in at construction and back out at
// conversion. The unit catalog in catalog.go is generated from
// cmd/unitgen/units.toml.
package si

//go:generate go run ./cmd/unitgen -out catalog.go
