// Package intent decides what a chat message is asking for.
package intent

// Intent is one of the closed set of actions the bot can take.
type Intent string

const (
	AddExpense     Intent = "add_expense"
	AddIncome      Intent = "add_income"
	CheckBalance   Intent = "check_balance"
	ShowByCategory Intent = "show_by_category"
	ShowByMonth    Intent = "show_by_month"
	ShowByDate     Intent = "show_by_date"
	Greeting       Intent = "greeting"
	Goodbye        Intent = "goodbye"
	ThankYou       Intent = "thank_you"
	Unknown        Intent = "unknown"
)

// Vocabulary lists every intent a classifier may produce, Unknown last.
var Vocabulary = []Intent{
	AddExpense,
	AddIncome,
	CheckBalance,
	ShowByCategory,
	ShowByMonth,
	ShowByDate,
	Greeting,
	Goodbye,
	ThankYou,
	Unknown,
}

// Parse maps a classifier label to an Intent. Labels outside the vocabulary
// return Unknown and false.
func Parse(label string) (Intent, bool) {
	for _, in := range Vocabulary {
		if string(in) == label {
			return in, true
		}
	}
	return Unknown, false
}

// Labels returns the vocabulary as plain strings.
func Labels() []string {
	labels := make([]string, len(Vocabulary))
	for i, in := range Vocabulary {
		labels[i] = string(in)
	}
	return labels
}

func (i Intent) String() string {
	return string(i)
}
