package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDatetime renders t relative to now the way the channel table and
// the info block show release times.
func FormatDatetime(now, t time.Time) string {
	delta := now.Sub(t)
	var amount int
	var unit string
	switch {
	case delta < time.Minute:
		return "just now"
	case delta < time.Hour:
		amount, unit = int(delta/time.Minute), "minute"
	case delta < 24*time.Hour:
		amount, unit = int(delta/time.Hour), "hour"
	case delta < 30*24*time.Hour:
		amount, unit = int(delta/(24*time.Hour)), "day"
	default:
		return t.Format(time.DateOnly)
	}
	if amount != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", amount, unit)
}

var sizeUnits = []string{"B", "K", "M", "G", "T", "P"}

// HumanizeSize renders a byte count with binary units. The fraction is
// truncated, not rounded, to three decimals. Negative sizes show as 0B.
func HumanizeSize(size int64) string {
	if size < 0 {
		size = 0
	}
	if size < 1024 {
		return strconv.FormatInt(size, 10) + sizeUnits[0]
	}

	unit := 0
	divisor := int64(1)
	for unit < len(sizeUnits)-1 && size/divisor >= 1024 {
		divisor *= 1024
		unit++
	}

	whole := size / divisor
	frac := (size % divisor) * 1000 / divisor
	return fmt.Sprintf("%d.%03d%s", whole, frac, sizeUnits[unit])
}

// Plural appends "s" to word unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %s", n, strings.TrimSuffix(word, "s")+"s")
}
