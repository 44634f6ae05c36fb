package extract

import (
	"testing"

	"github.com/fundsbot/fundsbot/internal/models"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		text    string
		want    models.Category
		matched bool
	}{
		{"spent 50 on lunch", models.CategoryFood, true},
		{"PIZZA night", models.CategoryFood, true},
		{"went to a movie", models.CategoryOuting, true},
		{"netflix renewal", models.CategoryEntertainment, true},
		{"uber to office", models.CategoryTransport, true},
		{"bought her coffee", models.CategoryFood, true},
		{"gift for my girlfriend", models.CategoryHeart, true},
		{"new jeans", models.CategoryClothing, true},
		{"milk and eggs", models.CategoryGroceries, true},
		{"exam fees", models.CategoryFees, true},
		{"two notebooks", models.CategoryOthers, false},
		{"something random", models.CategoryOthers, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, matched := Category(tt.text)
			if got != tt.want || matched != tt.matched {
				t.Errorf("Category(%q) = (%s, %v), want (%s, %v)", tt.text, got, matched, tt.want, tt.matched)
			}
		})
	}
}

func TestCategoryMatcher_CustomTable(t *testing.T) {
	m := NewCategoryMatcher([]CategoryEntry{
		{models.CategoryTransport, []string{"fuel", ""}},
		{models.CategoryOthers, nil},
	}, models.CategoryOthers)

	if got, ok := m.Match("fuel top-up"); got != models.CategoryTransport || !ok {
		t.Errorf("Match(fuel) = (%s, %v)", got, ok)
	}
	if got, ok := m.Match("lunch"); got != models.CategoryOthers || ok {
		t.Errorf("Match(lunch) = (%s, %v)", got, ok)
	}
}

func TestMentionsOthers(t *testing.T) {
	if !MentionsOthers("put 40 under Others") {
		t.Error("MentionsOthers() = false for explicit others")
	}
	if MentionsOthers("another thing") {
		t.Error("MentionsOthers() = true without the word")
	}
}
