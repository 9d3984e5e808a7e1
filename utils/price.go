package utils

import (
	"fmt"
	"math"
)

// FormatPrice renders minor-unit cents as a Sri Lankan Rupee display string,
// e.g. FormatPrice(299900) == "Rs. 2,999.00".
func FormatPrice(cents int64) string {
	major := cents / 100
	frac := cents % 100
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("Rs. %s.%02d", groupThousands(major), frac)
}

// ToMinorUnits converts a major-unit amount to integer cents, rounding to
// the nearest cent. Amounts with more than two fractional digits lose
// precision here; that is the intended boundary behavior.
func ToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

// MinorToMajor converts integer cents back to a major-unit amount. Only used
// at the presentation edge; arithmetic stays in minor units.
func MinorToMajor(cents int64) float64 {
	return float64(cents) / 100
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	str := fmt.Sprintf("%d", n)
	l := len(str)
	if l <= 3 {
		return sign + str
	}

	result := ""
	for i, digit := range str {
		if i > 0 && (l-i)%3 == 0 {
			result += ","
		}
		result += string(digit)
	}
	return sign + result
}
