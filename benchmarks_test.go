package si_test

import (
	"testing"

	"github.com/soypat/si"
	"gonum.org/v1/gonum/unit"
)

var (
	benchForce si.Coherent[si.Force]
	benchTemp  si.Measure[si.Temperature]
	benchSum   si.Coherent[si.Time]
	benchUnit  *unit.Unit
)

func BenchmarkThisPackage_MulAs(b *testing.B) {
	mass := si.Kilogram.Of(2)
	accel := si.MetrePerSecondSquared.Of(9.8)
	for i := 0; i < b.N; i++ {
		force, err := si.As[si.Force](si.Mul(mass, accel))
		if err != nil {
			b.Fatal(err)
		}
		benchForce = force
	}
}

func BenchmarkGonum_Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mass := unit.New(2, unit.Dimensions{unit.MassDim: 1})
		accel := unit.New(9.8, unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2})
		benchUnit = mass.Mul(accel)
	}
}

func BenchmarkThisPackage_Add(b *testing.B) {
	x := si.New(10, si.Milli, si.Second)
	y := si.New(20000, si.Micro, si.Second)
	for i := 0; i < b.N; i++ {
		benchSum = x.Add(y)
	}
}

func BenchmarkGonum_Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x := unit.New(0.01, unit.Dimensions{unit.TimeDim: 1})
		y := unit.New(0.02, unit.Dimensions{unit.TimeDim: 1})
		benchUnit = x.Add(y)
	}
}

func BenchmarkThisPackage_Convert(b *testing.B) {
	cold := si.New(5000, si.Milli, si.Kelvin)
	for i := 0; i < b.N; i++ {
		benchTemp = si.Convert(cold, si.NoPrefix, si.DegreeFahrenheit)
	}
}
