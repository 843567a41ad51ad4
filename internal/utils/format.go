package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEuro formats an amount in the Dutch convention: "€ 1.234,56" with a
// dot as thousands separator and a comma before the cents.
func FormatEuro(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	whole, cents, _ := strings.Cut(fixed, ".")
	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("€ %s%s,%s", sign, grouped.String(), cents)
}

// FormatTime renders a remaining-seconds countdown as M:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDuration renders seconds as a human-readable Dutch duration:
// "45 seconden", "2 minuten", "1 minuut" or "2:30".
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	secs := seconds % 60
	switch {
	case minutes == 0:
		return fmt.Sprintf("%d seconden", secs)
	case secs == 0 && minutes == 1:
		return "1 minuut"
	case secs == 0:
		return fmt.Sprintf("%d minuten", minutes)
	default:
		return fmt.Sprintf("%d:%02d", minutes, secs)
	}
}

// ParseAmount parses a learner-typed amount, accepting the Dutch decimal
// comma as well as a dot, with an optional € sign and spaces. Empty input
// yields (nil, nil): an intentionally blank field is not an error.
func ParseAmount(value string) (*decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil, nil
	}
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return &d, nil
}

// FormatStars renders a star total as emoji, e.g. 3.5 of 5 as "⭐⭐⭐✨☆".
func FormatStars(stars float64, max int) string {
	full := int(math.Floor(stars))
	if full > max {
		full = max
	}
	half := stars-float64(full) >= 0.5 && full < max
	empty := max - full
	if half {
		empty--
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("⭐", full))
	if half {
		b.WriteString("✨")
	}
	b.WriteString(strings.Repeat("☆", empty))
	return b.String()
}
