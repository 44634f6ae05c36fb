package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNames = func() map[string]int {
	names := make(map[string]int, 24)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		names[full] = int(m)
		names[full[:3]] = int(m)
	}
	return names
}()

var yearRe = regexp.MustCompile(`\b(20\d{2})\b`)

// Month returns the first whitespace-separated token that is a month name or
// its three-letter abbreviation.
func Month(text string) (int, bool) {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if month, ok := monthNames[word]; ok {
			return month, true
		}
	}
	return 0, false
}

// Year returns the first standalone 20xx number in text.
func Year(text string) (int, bool) {
	m := yearRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
