//go:build si_float32

package si

import (
	"math"
	"strconv"
)

// Float is the numeric payload of every quantity in this package: float32
// in this build (si_float32 tag), float64 otherwise. The width is uniform
// across a program.
type Float = float32

func pow10(exp int) Float { return Float(math.Pow10(exp)) }

func powf(x, y Float) Float { return Float(math.Pow(float64(x), float64(y))) }

func formatFloat(v Float) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
