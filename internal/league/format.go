package league

import "fmt"

// MoneyPlaceholder is what the dashboard shows instead of "$0.00".
const MoneyPlaceholder = "—"

// CoalesceZero is the single null-as-zero policy: absent numeric values
// coming off the database (nullable aggregates like dead money) become a
// true zero before they reach any computation.
func CoalesceZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// FormatMoney renders a money value for display. An exact zero becomes the
// placeholder — a presentation rule only; the underlying value stays a real
// zero everywhere else.
func FormatMoney(v float64) string {
	if v == 0 {
		return MoneyPlaceholder
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatWinPct renders a win percentage the way the dashboard prints it:
// whole percent, no decimals.
func FormatWinPct(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}
