package report

import (
	"fmt"
	"strings"
)

// ValidMonth reports whether s has the YYYY-MM shape: exactly 7 characters
// with a dash at index 4. Only the shape is checked, matching what the
// prefix comparison in the store needs.
func ValidMonth(s string) bool {
	return len(s) == 7 && s[4] == '-'
}

// MonthCSV renders the monthly export. Quoting is deliberately minimal: only
// the name field is quoted, with inner quotes doubled. Phones and the fixed
// 2-dp amounts never contain commas, and names with embedded newlines are
// not handled.
func MonthCSV(month string, rows []MonthlyRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "phone,name,total_ordered_%s,total_paid_%s,balance_lifetime\n", month, month)
	for _, r := range rows {
		name := strings.ReplaceAll(r.Name, `"`, `""`)
		balance := r.OrderedAll.Round(2).Sub(r.PaidAll.Round(2))
		fmt.Fprintf(&b, "%s,\"%s\",%s,%s,%s\n",
			r.Phone, name,
			r.OrderedMonth.StringFixed(2),
			r.PaidMonth.StringFixed(2),
			balance.StringFixed(2))
	}
	return b.String()
}
