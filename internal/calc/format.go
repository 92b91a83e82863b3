package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	textNaN      = "NaN"
	textInfinity = "Infinity"

	// Decimal exponents outside (-7, 21] switch to exponent notation.
	minPlainExponent = -6
	maxPlainExponent = 21
)

// FormatNumber renders v the way the display shows numbers: shortest
// round-trip digits, plain notation for magnitudes in [1e-6, 1e21), exponent
// notation otherwise.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return textNaN
	case math.IsInf(v, 1):
		return textInfinity
	case math.IsInf(v, -1):
		return "-" + textInfinity
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// 'e' with precision -1 yields the shortest digits as d.ddddde±xx.
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, expText, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expText)
	digits := strings.Replace(mantissa, ".", "", 1)
	k := len(digits)
	n := exp + 1

	var b strings.Builder
	b.WriteString(sign)
	switch {
	case k <= n && n <= maxPlainExponent:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= maxPlainExponent:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case minPlainExponent < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(n - 1))
	}
	return b.String()
}

var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// ParseNumber reads the longest numeric prefix of text. Text without one,
// including "NaN" and a lone "-", parses to NaN.
func ParseNumber(text string) float64 {
	match := numericPrefix.FindString(strings.TrimLeft(text, " \t\n\r\v\f"))
	if match == "" {
		return math.NaN()
	}
	unsigned := strings.TrimLeft(match, "+-")
	if unsigned == textInfinity {
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// Out-of-range literals still carry the correctly signed ±Inf or 0.
	v, _ := strconv.ParseFloat(match, 64)
	return v
}
