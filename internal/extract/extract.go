// Package extract pulls amounts, categories, dates and months out of free
// text chat messages.
package extract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/models"
)

// Slots is everything the extractors found in one message.
type Slots struct {
	Amount          decimal.Decimal
	HasAmount       bool
	Category        models.Category
	CategoryMatched bool
	MentionsOthers  bool
	Date            DateResult
	Month           int
	HasMonth        bool
	Year            int
	HasYear         bool
}

// Extractor runs the slot extractors against an injectable clock.
type Extractor struct {
	Now        func() time.Time
	AmountPick AmountPick
}

// New returns an Extractor using the wall clock.
func New(pick AmountPick) *Extractor {
	return &Extractor{Now: time.Now, AmountPick: pick}
}

func (e *Extractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// CurrentTime reads the extractor's clock.
func (e *Extractor) CurrentTime() time.Time {
	return e.now()
}

// Amount returns the amount token chosen by AmountPick. A zero amount counts
// as missing.
func (e *Extractor) Amount(text string) (decimal.Decimal, bool) {
	value, ok := amount(text, e.AmountPick)
	if !ok || !value.IsPositive() {
		return decimal.Zero, false
	}
	return value, true
}

// Date resolves the date a message refers to. It never fails: when nothing
// usable is found it returns today with Source DateDefaulted.
func (e *Extractor) Date(text string) DateResult {
	return parseDate(text, e.now())
}

// Slots runs every extractor over text.
func (e *Extractor) Slots(text string) Slots {
	var s Slots
	s.Amount, s.HasAmount = e.Amount(text)
	s.Category, s.CategoryMatched = Category(text)
	s.MentionsOthers = MentionsOthers(text)
	s.Date = e.Date(text)
	s.Month, s.HasMonth = Month(text)
	s.Year, s.HasYear = Year(text)
	return s
}
