package extract

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// AmountPick chooses which numeric token is the amount when several appear.
type AmountPick int

const (
	// AmountFirst takes the first number. A date written before the amount
	// ("on 5 2024 spent 50") is picked up instead of the amount.
	AmountFirst AmountPick = iota
	AmountLast
)

// ParseAmountPick maps "first"/"last" to an AmountPick, defaulting to first.
func ParseAmountPick(s string) AmountPick {
	if s == "last" {
		return AmountLast
	}
	return AmountFirst
}

var amountRe = regexp.MustCompile(`\b\d+(\.\d{1,2})?\b`)

func amount(text string, pick AmountPick) (decimal.Decimal, bool) {
	var token string
	switch pick {
	case AmountLast:
		all := amountRe.FindAllString(text, -1)
		if len(all) == 0 {
			return decimal.Zero, false
		}
		token = all[len(all)-1]
	default:
		token = amountRe.FindString(text)
		if token == "" {
			return decimal.Zero, false
		}
	}

	value, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}
