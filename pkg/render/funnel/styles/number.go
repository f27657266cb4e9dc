package styles

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MaxPrecision bounds the number of decimal places FormatFixed accepts.
const MaxPrecision = 100

// FormatNumber renders v using the shortest decimal representation that
// round-trips. Very large and very small magnitudes switch to exponent form.
func FormatNumber(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed renders v with exactly precision decimal places. Ties round
// away from zero. Precision is clamped to [0, MaxPrecision].
func FormatFixed(v float64, precision int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	precision = min(max(precision, 0), MaxPrecision)
	if math.Abs(v) >= 1e21 {
		return FormatNumber(v)
	}

	neg := v < 0
	r := new(big.Rat).SetFloat64(math.Abs(v))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	digits := n.String()
	if precision > 0 {
		if len(digits) <= precision {
			digits = strings.Repeat("0", precision-len(digits)+1) + digits
		}
		cut := len(digits) - precision
		digits = digits[:cut] + "." + digits[cut:]
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// FormatPercent renders the change ratio next/prev as a percentage string
// with the given precision.
func FormatPercent(ratio float64, precision int) string {
	return FormatFixed(ratio*100, precision) + "%"
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
