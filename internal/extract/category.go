package extract

import (
	"regexp"
	"strings"

	"github.com/fundsbot/fundsbot/internal/models"
)

// CategoryEntry pairs a category with the keywords that select it.
type CategoryEntry struct {
	Category models.Category
	Keywords []string
}

// CategoryKeywords is the keyword priority table. Categories are tested top to
// bottom and the first one with a whole-word keyword hit wins, so "movie"
// resolves to outing rather than entertainment. Treat as read-only.
var CategoryKeywords = []CategoryEntry{
	{models.CategoryFood, []string{
		"food", "eat", "snack", "lunch", "dinner", "breakfast", "cafe", "restaurant", "coffee", "pizza", "burger", "meal", "thali",
	}},
	{models.CategoryStationery, []string{
		"stationery", "pen", "pencil", "eraser", "notebook", "book", "copy", "paper", "files", "markers", "highlighter",
	}},
	{models.CategoryOuting, []string{
		"outing", "movie", "cinema", "trip", "vacation", "picnic", "tour", "hangout", "resort", "travel",
	}},
	{models.CategoryTransport, []string{
		"transport", "bus", "train", "cab", "taxi", "auto", "ride", "metro", "flight", "fare", "bike", "uber", "ola",
	}},
	{models.CategoryFees, []string{
		"fees", "tuition", "school", "college", "exam", "admission", "registration", "course", "classes", "coaching",
	}},
	{models.CategoryHeart, []string{
		"heart", "girlfriend", "boyfriend", "partner", "crush", "date", "love", "darling", "sweetheart", "bae", "him", "her", "anniversary", "valentine",
	}},
	{models.CategoryClothing, []string{
		"clothes", "clothing", "dress", "shirt", "tshirt", "jeans", "hoodie", "kurta", "lehenga", "suit", "apparel", "jacket",
	}},
	{models.CategoryGroceries, []string{
		"grocery", "groceries", "vegetables", "fruits", "milk", "bread", "eggs", "ration", "supermarket",
	}},
	{models.CategoryEntertainment, []string{
		"entertainment", "netflix", "subscription", "spotify", "games", "game", "movie", "fun", "play", "music", "youtube",
	}},
	{models.CategoryOthers, nil},
}

var othersRe = regexp.MustCompile(`\bothers\b`)

// CategoryMatcher resolves text to a category using a priority table.
type CategoryMatcher struct {
	entries  []CategoryEntry
	patterns []*regexp.Regexp
	fallback models.Category
}

// NewCategoryMatcher compiles one whole-word pattern per table entry.
// Entries without keywords never match.
func NewCategoryMatcher(table []CategoryEntry, fallback models.Category) *CategoryMatcher {
	m := &CategoryMatcher{
		entries:  table,
		patterns: make([]*regexp.Regexp, len(table)),
		fallback: fallback,
	}
	for i, entry := range table {
		var alts []string
		for _, kw := range entry.Keywords {
			if kw == "" {
				continue
			}
			alts = append(alts, regexp.QuoteMeta(strings.ToLower(kw)))
		}
		if len(alts) == 0 {
			continue
		}
		m.patterns[i] = regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)\b`)
	}
	return m
}

// Match returns the first category whose keyword appears in text, or the
// fallback with matched=false.
func (m *CategoryMatcher) Match(text string) (category models.Category, matched bool) {
	lower := strings.ToLower(text)
	for i, re := range m.patterns {
		if re != nil && re.MatchString(lower) {
			return m.entries[i].Category, true
		}
	}
	return m.fallback, false
}

var defaultCategories = NewCategoryMatcher(CategoryKeywords, models.CategoryOthers)

// Category resolves text against CategoryKeywords, defaulting to others.
func Category(text string) (models.Category, bool) {
	return defaultCategories.Match(text)
}

// MentionsOthers reports whether the literal word "others" appears in text.
func MentionsOthers(text string) bool {
	return othersRe.MatchString(strings.ToLower(text))
}
