package intent

import (
	"regexp"
	"strings"
)

// Rule is a deterministic override checked before any classifier.
type Rule struct {
	Name  string
	Match func(lower string) (Intent, bool)
}

var (
	datePhraseRe = regexp.MustCompile(`\b(on|for|summary)\s+(\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`)
	monthNameRe  = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\b`)
)

var (
	queryKeywords = []string{"show", "what", "how much", "summary", "spent", "income", "expenses", "records", "details"}
	monthKeywords = append(append([]string{}, queryKeywords...), "month", "monthly")
)

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// DateRule fires on "on|for|summary <date>" plus a query keyword.
var DateRule = Rule{
	Name: "rule:date",
	Match: func(lower string) (Intent, bool) {
		if datePhraseRe.MatchString(lower) && containsAny(lower, queryKeywords) {
			return ShowByDate, true
		}
		return "", false
	},
}

// MonthRule fires on a month name with a query keyword, unless a full date
// phrase is present.
var MonthRule = Rule{
	Name: "rule:month",
	Match: func(lower string) (Intent, bool) {
		if monthNameRe.MatchString(lower) &&
			!datePhraseRe.MatchString(lower) &&
			containsAny(lower, monthKeywords) {
			return ShowByMonth, true
		}
		return "", false
	},
}

// DefaultRules is the override chain in priority order.
func DefaultRules() []Rule {
	return []Rule{DateRule, MonthRule}
}
