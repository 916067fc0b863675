//go:build !si_float32

package si

import (
	"math"
	"strconv"
)

// Float is the numeric payload of every quantity in this package.
// Builds carrying the si_float32 tag use float32 instead; the width is
// uniform across a program.
type Float = float64

func pow10(exp int) Float { return math.Pow10(exp) }

func powf(x, y Float) Float { return math.Pow(x, y) }

func formatFloat(v Float) string { return strconv.FormatFloat(v, 'g', -1, 64) }
