package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ScaleFormat renders amount as a dollar figure scaled to B, M or K with two
// decimals. Negative amounts are scaled on their magnitude: -1.28e8 -> "-$128.00M".
func ScaleFormat(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	switch {
	case amount >= Billion:
		return fmt.Sprintf("%s$%.2fB", sign, amount/Billion)
	case amount >= Million:
		return fmt.Sprintf("%s$%.2fM", sign, amount/Million)
	case amount >= Thousand:
		return fmt.Sprintf("%s$%.2fK", sign, amount/Thousand)
	default:
		return fmt.Sprintf("%s$%.2f", sign, amount)
	}
}

// FormatPrice keeps sub-hundred prices unscaled.
func FormatPrice(price float64) string {
	if price > 100 {
		return ScaleFormat(price)
	}
	return fmt.Sprintf("$%.2f", price)
}

// SignedPercent renders v with an explicit "+" for non-negative values.
func SignedPercent(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// Percent renders v with two decimals and a trailing "%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatThousands renders n with comma separators, e.g. 12345 -> "12,345".
func FormatThousands(n int64) string {
	if n < 0 {
		return "-" + groupDigits(strconv.FormatInt(-n, 10))
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

// FormatDecimalThousands renders v with comma separators and two decimals.
func FormatDecimalThousands(v float64) string {
	s := decimal.NewFromFloat(math.Abs(v)).StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := groupDigits(intPart) + "." + frac
	if v < 0 {
		return "-" + out
	}
	return out
}

// Round2 rounds v to two decimal places, half away from zero on the
// shortest decimal form of v.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
