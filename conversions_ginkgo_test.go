//go:build !si_float32

package si_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/soypat/si"
)

func TestConversionSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Conversion Suite")
}

var _ = Describe("Convert", func() {
	DescribeTable("re-expresses a measure in another prefix and unit",
		func(got, expected, tolerance float64) {
			Expect(got).To(BeNumerically("~", expected, tolerance))
		},
		Entry("milliseconds to seconds",
			si.Convert(si.New(5000, si.Milli, si.Second), si.NoPrefix, si.Second).Value(), 5.0, 0.0),
		Entry("milliseconds to minutes",
			si.Convert(si.New(5000, si.Milli, si.Second), si.NoPrefix, si.Minute).Value(), 1.0/12.0, 0.0),
		Entry("seconds to minutes",
			si.Convert(si.Second.Of(90), si.NoPrefix, si.Minute).Value(), 1.5, 0.0),
		Entry("hours to days",
			si.Convert(si.Hour.Of(36), si.NoPrefix, si.Day).Value(), 1.5, 0.0),
		Entry("kilometres to metres",
			si.Convert(si.New(2.5, si.Kilo, si.Metre), si.NoPrefix, si.Metre).Value(), 2500.0, 0.0),
		Entry("metres to nanometres",
			si.Convert(si.Metre.Of(1), si.Nano, si.Metre).Value(), 1e9, 0.0),
		Entry("tonnes to grams",
			si.Convert(si.Tonne.Of(1), si.NoPrefix, si.Gram).Value(), 1e6, 0.0),
		Entry("micrograms to kilograms",
			si.Convert(si.New(1e9, si.Micro, si.Gram), si.Kilo, si.Gram).Value(), 1.0, 0.0),
		Entry("cubic metres to litres",
			si.Convert(si.CubicMetre.Of(1), si.NoPrefix, si.Litre).Value(), 1000.0, 0.0),
		Entry("gigahertz to megahertz",
			si.Convert(si.New(1, si.Giga, si.Hertz), si.Mega, si.Hertz).Value(), 1000.0, 0.0),
		Entry("degrees to radians",
			si.Convert(si.Degree.Of(180), si.NoPrefix, si.Radian).Value(), math.Pi, 0.0),
		Entry("radians to degrees",
			si.Convert(si.Radian.Of(math.Pi), si.NoPrefix, si.Degree).Value(), 180.0, 0.0),
	)

	DescribeTable("maps between temperature scales",
		func(got, expected, tolerance float64) {
			Expect(got).To(BeNumerically("~", expected, tolerance))
		},
		Entry("absolute zero in celsius",
			si.Convert(si.Kelvin.Of(0), si.NoPrefix, si.DegreeCelsius).Value(), -273.15, 0.0),
		Entry("boiling point in fahrenheit",
			si.Convert(si.DegreeCelsius.Of(100), si.NoPrefix, si.DegreeFahrenheit).Value(), 212.0, 1e-9),
		Entry("freezing point in celsius",
			si.Convert(si.DegreeFahrenheit.Of(32), si.NoPrefix, si.DegreeCelsius).Value(), 0.0, 0.0),
		Entry("boiling point back to celsius",
			si.Convert(si.DegreeFahrenheit.Of(212), si.NoPrefix, si.DegreeCelsius).Value(), 100.0, 0.0),
		Entry("five millikelvin in fahrenheit",
			si.Convert(si.New(5000, si.Milli, si.Kelvin), si.NoPrefix, si.DegreeFahrenheit).Value(), -450.67, 0.005),
	)
})
