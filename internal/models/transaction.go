package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the storage and display format of record dates.
const DateLayout = "2006-01-02"

// TimeLayout is the storage format of the income time column.
const TimeLayout = "15:04:05"

// Expense is one row of the expenses table. Month and Year always mirror Date.
type Expense struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Category Category        `json:"category"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewExpense builds an expense with a fresh id and month/year derived from date.
func NewExpense(date time.Time, category Category, amount decimal.Decimal) *Expense {
	day := civilDate(date)
	return &Expense{
		ID:       uuid.NewString(),
		Date:     day,
		Category: category,
		Month:    int(day.Month()),
		Year:     day.Year(),
		Amount:   amount,
	}
}

// DateString renders Date as YYYY-MM-DD.
func (e *Expense) DateString() string {
	return e.Date.Format(DateLayout)
}

// Income is one row of the income table. Month and Year always mirror Date.
type Income struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Time   string          `json:"time"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// NewIncome builds an income with a fresh id, month/year derived from date and
// the clock time of recordedAt.
func NewIncome(date time.Time, amount decimal.Decimal, recordedAt time.Time) *Income {
	day := civilDate(date)
	return &Income{
		ID:     uuid.NewString(),
		Date:   day,
		Time:   recordedAt.Format(TimeLayout),
		Month:  int(day.Month()),
		Year:   day.Year(),
		Amount: amount,
	}
}

// DateString renders Date as YYYY-MM-DD.
func (i *Income) DateString() string {
	return i.Date.Format(DateLayout)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterKind selects which columns an aggregate query filters on.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterCategory
	FilterMonth
	FilterDate
)

// Filter narrows a sum aggregate. Only the fields matching Kind are used.
type Filter struct {
	Kind     FilterKind
	Category Category
	Month    int
	Year     int
	Date     time.Time
}

func AllRecords() Filter {
	return Filter{Kind: FilterAll}
}

func ByCategory(c Category) Filter {
	return Filter{Kind: FilterCategory, Category: c}
}

func ByMonth(month, year int) Filter {
	return Filter{Kind: FilterMonth, Month: month, Year: year}
}

func ByDate(date time.Time) Filter {
	return Filter{Kind: FilterDate, Date: civilDate(date)}
}

// DateString renders the date filter as YYYY-MM-DD.
func (f Filter) DateString() string {
	return f.Date.Format(DateLayout)
}
