package util

import (
	"fmt"
	"math"
)

// FormatCompact formats large numbers with K/M/B/T suffixes.
func FormatCompact(number float64, precision int) string {
	switch {
	case number >= 1e12:
		return fmt.Sprintf("%.*fT", precision, number/1e12)
	case number >= 1e9:
		return fmt.Sprintf("%.*fB", precision, number/1e9)
	case number >= 1e6:
		return fmt.Sprintf("%.*fM", precision, number/1e6)
	case number >= 1e3:
		return fmt.Sprintf("%.*fK", precision, number/1e3)
	default:
		return fmt.Sprintf("%.*f", precision, number)
	}
}

// FormatCurrency formats an amount for the given currency code.
// AED amounts are whole dirhams, USD keeps cents.
func FormatCurrency(amount float64, currency string) string {
	switch currency {
	case "AED":
		return fmt.Sprintf("AED %s", groupThousands(amount, 0))
	case "USD":
		return fmt.Sprintf("$%s", groupThousands(amount, 2))
	default:
		return fmt.Sprintf("%s %s", groupThousands(amount, 2), currency)
	}
}

func groupThousands(v float64, precision int) string {
	s := fmt.Sprintf("%.*f", precision, v)
	intPart := s
	frac := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart = s[:i]
			frac = s[i:]
			break
		}
	}
	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}
	n := len(intPart)
	if n <= 3 {
		if neg {
			return "-" + intPart + frac
		}
		return intPart + frac
	}
	out := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		out = append(out, intPart[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i:i+3]...)
	}
	if neg {
		return "-" + string(out) + frac
	}
	return string(out) + frac
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// SafeDivide divides two numbers, returning def when the denominator is zero.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 {
		return def
	}
	return numerator / denominator
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
