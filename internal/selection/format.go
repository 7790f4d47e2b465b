package selection

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const notAvailable = "N/A"

// Money formats a whole-dollar amount: 1330000 → "$1,330,000", -45000 →
// "-$45,000". Non-finite values render as "N/A".
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return notAvailable
	}
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + humanize.Comma(-n)
	}
	return "$" + humanize.Comma(n)
}

// Percent1 formats with one decimal: 40.7 → "40.7%".
func Percent1(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return notAvailable
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Percent formats without forcing decimals: 87 → "87%", 40.7 → "40.7%".
func Percent(v float64) string {
	return Number(v) + "%"
}

// Number drops a trailing ".0": 152 → "152", 0.5 → "0.5".
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Date renders a calendar date as "Jan 2, 2006".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// Initials returns the first letter of each word of name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
