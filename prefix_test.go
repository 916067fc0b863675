package si

import "testing"

func TestPrefixString(t *testing.T) {
	testCases := []struct {
		p        Prefix
		expected string
	}{
		{p: Quecto, expected: "q"},
		{p: Ronto, expected: "r"},
		{p: Yocto, expected: "y"},
		{p: Zepto, expected: "z"},
		{p: Atto, expected: "a"},
		{p: Femto, expected: "f"},
		{p: Pico, expected: "p"},
		{p: Nano, expected: "n"},
		{p: Micro, expected: "µ"},
		{p: Milli, expected: "m"},
		{p: Centi, expected: "c"},
		{p: Deci, expected: "d"},
		{p: NoPrefix, expected: ""},
		{p: Deca, expected: "da"},
		{p: Hecto, expected: "h"},
		{p: Kilo, expected: "k"},
		{p: Mega, expected: "M"},
		{p: Giga, expected: "G"},
		{p: Tera, expected: "T"},
		{p: Peta, expected: "P"},
		{p: Exa, expected: "E"},
		{p: Zetta, expected: "Z"},
		{p: Yotta, expected: "Y"},
		{p: Ronna, expected: "R"},
		{p: Quetta, expected: "Q"},
		// Exponents without an SI name fall back to scientific notation.
		{p: Prefix(5), expected: "e5"},
		{p: Prefix(-7), expected: "e-7"},
	}
	for _, tC := range testCases {
		if got := tC.p.String(); got != tC.expected {
			t.Errorf("Prefix(%d).String() = %q, want %q", int(tC.p), got, tC.expected)
		}
	}
}

func TestPrefixFactor(t *testing.T) {
	testCases := []struct {
		p        Prefix
		expected Float
	}{
		{p: NoPrefix, expected: 1},
		{p: Kilo, expected: 1000},
		{p: Mega, expected: 1e6},
		{p: Giga, expected: 1e9},
		{p: Milli, expected: 0.001},
		{p: Micro, expected: 1e-6},
		{p: Nano, expected: 1e-9},
	}
	for _, tC := range testCases {
		if got := tC.p.Factor(); got != tC.expected {
			t.Errorf("Prefix(%d).Factor() = %v, want %v", int(tC.p), got, tC.expected)
		}
	}
	if got := Kilo.Factor() * Milli.Factor(); got != 1 {
		t.Errorf("kilo·milli = %v, want 1", got)
	}
}
