package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/pkg/errors"

	"github.com/fundsbot/fundsbot/internal/models"
	"github.com/fundsbot/fundsbot/internal/rrule"
)

// DateSource records whether a date was read from the text or filled in.
type DateSource int

const (
	// DateDefaulted means nothing usable was found and "now" was substituted.
	DateDefaulted DateSource = iota
	// DateExplicit means the text named the date.
	DateExplicit
)

func (s DateSource) String() string {
	if s == DateExplicit {
		return "explicit"
	}
	return "defaulted"
}

// DateResult is a calendar date with its month/year and provenance.
type DateResult struct {
	Date   time.Time
	Month  int
	Year   int
	Source DateSource
}

// String renders the date as YYYY-MM-DD.
func (d DateResult) String() string {
	return d.Date.Format(models.DateLayout)
}

func newDateResult(t time.Time, source DateSource) DateResult {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return DateResult{
		Date:   day,
		Month:  int(day.Month()),
		Year:   day.Year(),
		Source: source,
	}
}

var (
	strictDateRe  = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	partialDateRe = regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}\b`)
	relativeRe    = regexp.MustCompile(`\b(yesterday|tomorrow)\b`)
	todayRe       = regexp.MustCompile(`today`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})(?:[-/](\d+))?\b`)
	monthYearRe   = regexp.MustCompile(`\b` + en.MONTH_OFFSET_PATTERN + `(?:\s+\d{1,2}(?:st|nd|rd|th)?)?\s*,?\s+((?:19|20)\d{2})\b`)
)

var (
	monthDateRule = en.ExactMonthDate(rules.Override)
	weekdayRule   = en.Weekday(rules.Override)
	casualRule    = en.CasualDate(rules.Override)
	slashRule     = common.SlashDMY(rules.Override)
	ruleOptions   = &rules.Options{}
)

func parseDate(text string, now time.Time) DateResult {
	if strings.TrimSpace(text) == "" {
		return newDateResult(now, DateDefaulted)
	}

	if m := strictDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		t, err := buildDate(year, month, day)
		if err != nil {
			return newDateResult(now, DateDefaulted)
		}
		return newDateResult(t, DateExplicit)
	}

	lower := strings.ToLower(text)
	t, err := fuzzyDate(lower, now)
	if err != nil {
		return newDateResult(now, DateDefaulted)
	}

	if sameDay(t, now) &&
		!todayRe.MatchString(lower) &&
		!partialDateRe.MatchString(text) &&
		!relativeRe.MatchString(lower) {
		return newDateResult(now, DateDefaulted)
	}
	return newDateResult(t, DateExplicit)
}

// fuzzyDate reads day-first natural language dates. A month name wins over a
// numeric date, which wins over a weekday, which wins over today/yesterday/
// tomorrow. Missing parts come from now; a text with no date words yields now.
func fuzzyDate(lower string, now time.Time) (time.Time, error) {
	year := now.Year()
	if m := monthYearRe.FindStringSubmatchIndex(lower); m != nil {
		year, _ = strconv.Atoi(lower[m[2]:m[3]])
		lower = lower[:m[2]] + lower[m[3]:]
	}

	if c, ok := applyRule(monthDateRule, lower, now); ok && c.Month != nil {
		month := *c.Month
		day := 0
		if c.Day != nil && *c.Day >= 1 && *c.Day <= 31 {
			day = *c.Day
		}
		if day == 0 {
			day = min(now.Day(), daysIn(year, month))
		}
		return buildDate(year, month, day)
	}

	if m := numericDateRe.FindStringSubmatch(lower); m != nil {
		return numericDate(m, now)
	}

	if m := weekdayRule.Find(lower); m != nil {
		if m.Captures[0] == "" && m.Captures[2] == "" {
			day := time.Weekday(en.WEEKDAY_OFFSET[strings.TrimSpace(m.Captures[1])])
			return rrule.NextWeekday(day, now, true)
		}
		var c rules.Context
		if ok, err := m.Apply(&c, ruleOptions, now); err != nil || !ok {
			return time.Time{}, errors.Errorf("unreadable weekday %q", m.Text)
		}
		return now.AddDate(0, 0, wholeDays(c.Duration)), nil
	}

	if c, ok := applyRule(casualRule, lower, now); ok {
		return now.AddDate(0, 0, wholeDays(c.Duration)), nil
	}

	return now, nil
}

func applyRule(r rules.Rule, text string, now time.Time) (*rules.Context, bool) {
	m := r.Find(text)
	if m == nil {
		return nil, false
	}
	c := &rules.Context{Text: m.Text}
	ok, err := m.Apply(c, ruleOptions, now)
	if err != nil || !ok {
		return nil, false
	}
	return c, true
}

// numericDate reads D/M, D/M/YY and D/M/YYYY (also with dashes), day first.
// Day and month swap when only the swapped reading is valid. A fragment that
// is not a date under either reading is an error.
func numericDate(m []string, now time.Time) (time.Time, error) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month > 12 && day <= 12 {
		day, month = month, day
	}

	year := now.Year()
	if m[3] != "" {
		n, err := strconv.Atoi(m[3])
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "year in %q", m[0])
		}
		switch len(m[3]) {
		case 1, 2:
			year = expandYear(n, now)
		case 4:
			year = n
		default:
			return time.Time{}, errors.Errorf("year in %q must have 2 or 4 digits", m[0])
		}
	}

	canonical := strconv.Itoa(day) + "/" + strconv.Itoa(month) + "/" + strconv.Itoa(year)
	c, ok := applyRule(slashRule, canonical, now)
	if !ok || c.Day == nil || c.Month == nil || c.Year == nil {
		return time.Time{}, errors.Errorf("%q is not a day-first date", m[0])
	}
	return buildDate(*c.Year, *c.Month, *c.Day)
}

func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// expandYear maps a two-digit year into the century window around now.
func expandYear(year int, now time.Time) int {
	full := 2000 + year
	if full > now.Year()+50 {
		full -= 100
	}
	return full
}

func buildDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, errors.Errorf("month %d out of range", month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, errors.Errorf("day %d out of range for %04d-%02d", day, year, month)
	}
	return t, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
