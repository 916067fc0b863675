package si

import "strconv"

// Prefix is a metric prefix: a power of ten applied to a displayed value
// at the Measure boundary and nowhere else. The numeric value of a Prefix
// is its base-10 exponent.
type Prefix int

const (
	Quecto Prefix = -30
	Ronto  Prefix = -27
	Yocto  Prefix = -24
	Zepto  Prefix = -21
	Atto   Prefix = -18
	Femto  Prefix = -15
	Pico   Prefix = -12
	Nano   Prefix = -9
	Micro  Prefix = -6
	Milli  Prefix = -3
	Centi  Prefix = -2
	Deci   Prefix = -1
	// NoPrefix is the zero Prefix: a scale factor of one.
	NoPrefix Prefix = 0
	Deca     Prefix = 1
	Hecto    Prefix = 2
	Kilo     Prefix = 3
	Mega     Prefix = 6
	Giga     Prefix = 9
	Tera     Prefix = 12
	Peta     Prefix = 15
	Exa      Prefix = 18
	Zetta    Prefix = 21
	Yotta    Prefix = 24
	Ronna    Prefix = 27
	Quetta   Prefix = 30
)

// Factor returns 10 raised to p.
func (p Prefix) Factor() Float { return pow10(int(p)) }

// String returns the SI symbol of p, such as "m" for Milli, or the empty
// string for NoPrefix.
func (p Prefix) String() (s string) {
	switch p {
	case Quecto:
		s = "q"
	case Ronto:
		s = "r"
	case Yocto:
		s = "y"
	case Zepto:
		s = "z"
	case Atto:
		s = "a"
	case Femto:
		s = "f"
	case Pico:
		s = "p"
	case Nano:
		s = "n"
	case Micro:
		s = "µ"
	case Milli:
		s = "m"
	case Centi:
		s = "c"
	case Deci:
		s = "d"
	case NoPrefix:
		s = ""
	case Deca:
		s = "da"
	case Hecto:
		s = "h"
	case Kilo:
		s = "k"
	case Mega:
		s = "M"
	case Giga:
		s = "G"
	case Tera:
		s = "T"
	case Peta:
		s = "P"
	case Exa:
		s = "E"
	case Zetta:
		s = "Z"
	case Yotta:
		s = "Y"
	case Ronna:
		s = "R"
	case Quetta:
		s = "Q"
	default:
		s = "e" + strconv.Itoa(int(p))
	}
	return s
}
