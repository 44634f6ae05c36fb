// Package format renders amounts and summaries for chat replies.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Money renders an amount with exactly two fractional digits.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Balance renders all-time totals.
func Balance(income, expenses decimal.Decimal) string {
	return fmt.Sprintf("💰 Total Income: %s\n💸 Total Expenses: %s\n🧾 Balance: %s",
		Money(income), Money(expenses), Money(income.Sub(expenses)))
}

// Summary renders a titled period summary, e.g. "📅 April 2023 Summary:".
func Summary(title string, expenses, income decimal.Decimal) string {
	return fmt.Sprintf("📅 %s Summary:\n💸 Expenses: %s\n💰 Income: %s\n🧾 Balance: %s",
		title, Money(expenses), Money(income), Money(income.Sub(expenses)))
}

// MonthYear renders "April 2023".
func MonthYear(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month), year)
}
