package cli

import (
	"strconv"
	"strings"
	"time"
)

// FormatDate renders t as dd/mm/yyyy in t's own location.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatCurrency renders a whole-dong amount the Vietnamese way, with '.'
// grouping thousands and the ₫ sign after the number.
func FormatCurrency(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₫")
	return b.String()
}
