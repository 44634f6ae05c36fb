package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/extract"
	"github.com/fundsbot/fundsbot/internal/intent"
	"github.com/fundsbot/fundsbot/internal/models"
)

// Thursday.
var fixedNow = time.Date(2026, time.October, 15, 14, 30, 0, 0, time.UTC)

type memoryStore struct {
	expenses []*models.Expense
	income   []*models.Income
	err      error
	exists   map[models.Category]bool
	sumCalls []models.Filter
}

func (m *memoryStore) InsertExpense(_ context.Context, e *models.Expense) error {
	if m.err != nil {
		return m.err
	}
	m.expenses = append(m.expenses, e)
	return nil
}

func (m *memoryStore) InsertIncome(_ context.Context, in *models.Income) error {
	if m.err != nil {
		return m.err
	}
	m.income = append(m.income, in)
	return nil
}

func (m *memoryStore) SumExpenses(_ context.Context, f models.Filter) (decimal.Decimal, error) {
	m.sumCalls = append(m.sumCalls, f)
	if m.err != nil {
		return decimal.Zero, m.err
	}
	total := decimal.Zero
	for _, e := range m.expenses {
		if matches(f, e.Date, e.Month, e.Year) && (f.Kind != models.FilterCategory || e.Category == f.Category) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (m *memoryStore) SumIncome(_ context.Context, f models.Filter) (decimal.Decimal, error) {
	m.sumCalls = append(m.sumCalls, f)
	if m.err != nil {
		return decimal.Zero, m.err
	}
	if f.Kind == models.FilterCategory {
		return decimal.Zero, errors.New("category filter on income")
	}
	total := decimal.Zero
	for _, in := range m.income {
		if matches(f, in.Date, in.Month, in.Year) {
			total = total.Add(in.Amount)
		}
	}
	return total, nil
}

func (m *memoryStore) ExpenseCategoryExists(_ context.Context, c models.Category) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.exists[c] {
		return true, nil
	}
	for _, e := range m.expenses {
		if e.Category == c {
			return true, nil
		}
	}
	return false, nil
}

func matches(f models.Filter, date time.Time, month, year int) bool {
	switch f.Kind {
	case models.FilterMonth:
		return month == f.Month && year == f.Year
	case models.FilterDate:
		return date.Equal(f.Date)
	default:
		return true
	}
}

type fixedPredictor intent.Intent

func (p fixedPredictor) Predict(context.Context, string) intent.Intent {
	return intent.Intent(p)
}

type countingResolver struct {
	calls int
}

func (r *countingResolver) Resolve(context.Context, string) intent.Resolution {
	r.calls++
	return intent.Resolution{Intent: intent.Unknown, Source: intent.SourceClassifier}
}

func newTestHandlers(store Store, classified intent.Intent) *Handlers {
	resolver := intent.NewResolver(fixedPredictor(classified), nil, zerolog.Nop())
	ex := &extract.Extractor{Now: func() time.Time { return fixedNow }}
	return New(store, resolver, ex, "images/special.jpeg", zerolog.Nop())
}

func TestHandleMessage_AddExpense(t *testing.T) {
	store := &memoryStore{}
	h := newTestHandlers(store, intent.AddExpense)

	got := h.HandleMessage(context.Background(), "spent 50 on food")
	if got.Text != "✅ 50.00 added to food on 2026-10-15" {
		t.Errorf("reply = %q", got.Text)
	}
	if len(store.expenses) != 1 {
		t.Fatalf("inserted %d expenses, want 1", len(store.expenses))
	}

	e := store.expenses[0]
	if e.Category != models.CategoryFood || !e.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expense = %+v", e)
	}
	if e.Month != 10 || e.Year != 2026 || e.ID == "" {
		t.Errorf("expense month/year/id = %d/%d/%q", e.Month, e.Year, e.ID)
	}
}

func TestHandleMessage_AddExpenseClarifications(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"missing amount", "food expense", "❌ Sorry, I couldn't find the amount. Please specify the amount spent (e.g., 'spent 50 on food')."},
		{"zero amount", "spent 0 on food", "❌ Sorry, I couldn't find the amount. Please specify the amount spent (e.g., 'spent 50 on food')."},
		{"no category", "spent 40 yesterday", "❓ Got 40.00 for 2026-10-14. Which category should I assign this to? (e.g., food, transport, etc.)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			h := newTestHandlers(store, intent.AddExpense)

			if got := h.HandleMessage(context.Background(), tt.text); got.Text != tt.want {
				t.Errorf("reply = %q, want %q", got.Text, tt.want)
			}
			if len(store.expenses) != 0 {
				t.Errorf("inserted %d expenses, want 0", len(store.expenses))
			}
		})
	}
}

func TestHandleMessage_AddExpenseExplicitOthers(t *testing.T) {
	store := &memoryStore{}
	h := newTestHandlers(store, intent.AddExpense)

	got := h.HandleMessage(context.Background(), "put 40 under others")
	if got.Text != "✅ 40.00 added to others on 2026-10-15" {
		t.Errorf("reply = %q", got.Text)
	}
	if len(store.expenses) != 1 {
		t.Errorf("inserted %d expenses, want 1", len(store.expenses))
	}
}

func TestHandleMessage_AddIncome(t *testing.T) {
	store := &memoryStore{}
	h := newTestHandlers(store, intent.AddIncome)

	got := h.HandleMessage(context.Background(), "got 1000.5 salary yesterday")
	if got.Text != "✅ Income of 1000.50 added on 2026-10-14" {
		t.Errorf("reply = %q", got.Text)
	}
	if len(store.income) != 1 {
		t.Fatalf("inserted %d income rows, want 1", len(store.income))
	}
	if store.income[0].Time != "14:30:00" {
		t.Errorf("income time = %q, want 14:30:00", store.income[0].Time)
	}

	if got := h.HandleMessage(context.Background(), "salary came in"); got.Text != "❌ Please provide a valid amount for the income." {
		t.Errorf("reply without amount = %q", got.Text)
	}
}

func TestHandleMessage_ExpenseThenCategory(t *testing.T) {
	store := &memoryStore{}
	ctx := context.Background()

	newTestHandlers(store, intent.AddExpense).HandleMessage(ctx, "spent 50 on food")
	newTestHandlers(store, intent.AddExpense).HandleMessage(ctx, "paid 25.5 for lunch")

	got := newTestHandlers(store, intent.ShowByCategory).HandleMessage(ctx, "show expenses for food")
	if got.Text != "📊 Total spent on food: 75.50" {
		t.Errorf("reply = %q", got.Text)
	}
}

func TestHandleMessage_ShowByCategory(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		exists map[models.Category]bool
		want   string
	}{
		{"no category named", "show category totals", nil, categoryPrompt},
		{"no rows", "show heart spending", nil, "📊 No expenses recorded for the category 'heart' yet."},
		{"rows with zero total", "show heart spending", map[models.Category]bool{models.CategoryHeart: true}, "📊 Total spent on heart: 0.00"},
		{"explicit others", "show others", nil, "📊 No expenses recorded for the category 'others' yet."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers(&memoryStore{exists: tt.exists}, intent.ShowByCategory)
			if got := h.HandleMessage(context.Background(), tt.text); got.Text != tt.want {
				t.Errorf("reply = %q, want %q", got.Text, tt.want)
			}
		})
	}
}

func TestHandleMessage_CheckBalanceIsIdempotent(t *testing.T) {
	store := &memoryStore{
		expenses: []*models.Expense{models.NewExpense(fixedNow, models.CategoryFood, decimal.NewFromInt(30))},
		income:   []*models.Income{models.NewIncome(fixedNow, decimal.NewFromInt(100), fixedNow)},
	}
	h := newTestHandlers(store, intent.CheckBalance)
	want := "💰 Total Income: 100.00\n💸 Total Expenses: 30.00\n🧾 Balance: 70.00"

	for i := 0; i < 2; i++ {
		if got := h.HandleMessage(context.Background(), "show my balance"); got.Text != want {
			t.Errorf("call %d reply = %q, want %q", i, got.Text, want)
		}
	}
	if len(store.expenses) != 1 || len(store.income) != 1 {
		t.Error("check_balance modified the store")
	}
}

func TestHandleMessage_MonthRule(t *testing.T) {
	store := &memoryStore{}
	h := newTestHandlers(store, intent.AddExpense)

	got := h.HandleMessage(context.Background(), "show expenses for april 2023")
	if got.Text != "📅 No records found for April 2023." {
		t.Errorf("reply = %q", got.Text)
	}

	want := models.ByMonth(4, 2023)
	for _, f := range store.sumCalls {
		if f != want {
			t.Errorf("sum filter = %+v, want %+v", f, want)
		}
	}
	if len(store.sumCalls) != 2 {
		t.Errorf("sum calls = %d, want 2", len(store.sumCalls))
	}
}

func TestHandleMessage_ShowByMonth(t *testing.T) {
	store := &memoryStore{
		expenses: []*models.Expense{models.NewExpense(time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC), models.CategoryFood, decimal.NewFromInt(40))},
		income:   []*models.Income{models.NewIncome(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(100), fixedNow)},
	}
	h := newTestHandlers(store, intent.ShowByMonth)
	ctx := context.Background()

	want := "📅 April 2026 Summary:\n💸 Expenses: 40.00\n💰 Income: 100.00\n🧾 Balance: 60.00"
	if got := h.HandleMessage(ctx, "april summary"); got.Text != want {
		t.Errorf("reply = %q, want %q", got.Text, want)
	}

	if got := h.Dispatch(ctx, intent.ShowByMonth, "give me the totals"); got != "❌ Could not determine the month. Please specify a month name (e.g., 'summary for April')." {
		t.Errorf("reply without month = %q", got)
	}
}

func TestHandleMessage_ShowByDate(t *testing.T) {
	march5 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	store := &memoryStore{
		expenses: []*models.Expense{models.NewExpense(march5, models.CategoryTransport, decimal.RequireFromString("12.5"))},
	}
	h := newTestHandlers(store, intent.ShowByDate)
	ctx := context.Background()

	tests := []struct {
		text string
		want string
	}{
		{"show records on 2024-03-05", "📅 2024-03-05 Summary:\n💸 Expenses: 12.50\n💰 Income: 0.00\n🧾 Balance: -12.50"},
		{"show records on 2024-03-06", "📅 No records found for 2024-03-06."},
		{"what happened today", "📅 No income or expenses recorded for today (2026-10-15) yet."},
	}
	for _, tt := range tests {
		if got := h.HandleMessage(ctx, tt.text); got.Text != tt.want {
			t.Errorf("HandleMessage(%q) = %q, want %q", tt.text, got.Text, tt.want)
		}
	}

	if got := h.Dispatch(ctx, intent.ShowByDate, ""); got != "📅 No income or expenses recorded for today (2026-10-15) yet." {
		t.Errorf("Dispatch(show_by_date, empty) = %q", got)
	}
}

func TestHandleMessage_DatabaseErrors(t *testing.T) {
	boom := errors.New("connection refused")
	tests := []struct {
		intent intent.Intent
		text   string
		want   string
	}{
		{intent.AddExpense, "spent 50 on food", "❌ Database error while adding expense."},
		{intent.AddIncome, "got 100 salary", "❌ Database error while adding income."},
		{intent.CheckBalance, "balance", "❌ Database error while checking balance."},
		{intent.ShowByCategory, "show food", "❌ Database error while showing category food."},
		{intent.ShowByMonth, "june", "❌ Database error while showing month 6."},
		{intent.ShowByDate, "2024-03-05", "❌ Database error while showing date 2024-03-05."},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			h := newTestHandlers(&memoryStore{err: boom}, tt.intent)
			if got := h.Dispatch(context.Background(), tt.intent, tt.text); got != tt.want {
				t.Errorf("reply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandleMessage_SpecialTrigger(t *testing.T) {
	resolver := &countingResolver{}
	h := New(&memoryStore{}, resolver, extract.New(extract.AmountFirst), "images/special.jpeg", zerolog.Nop())

	got := h.HandleMessage(context.Background(), "  -1 ")
	if got.Special == nil {
		t.Fatal("Special = nil, want payload")
	}
	if got.Special.Text != "You cannot hack this Prachi!!!" || got.Special.ImagePath != "images/special.jpeg" {
		t.Errorf("Special = %+v", got.Special)
	}
	if resolver.calls != 0 {
		t.Errorf("resolver called %d times, want 0", resolver.calls)
	}
}

func TestHandleMessage_Empty(t *testing.T) {
	h := newTestHandlers(&memoryStore{}, intent.Greeting)
	if got := h.HandleMessage(context.Background(), "   "); got.Text != EmptyMessageReply {
		t.Errorf("reply = %q", got.Text)
	}
}

func TestDispatch_CannedReplies(t *testing.T) {
	h := newTestHandlers(&memoryStore{}, intent.Unknown)
	ctx := context.Background()

	tests := []struct {
		intent intent.Intent
		text   string
		prefix string
	}{
		{intent.Greeting, "hi", "👋 Hello!"},
		{intent.Goodbye, "bye", "👋 Goodbye!"},
		{intent.ThankYou, "thanks", "😊 You're welcome!"},
		{intent.Unknown, "How are you?", "I'm just a bot"},
		{intent.Unknown, "help", "I can help you track income"},
		{intent.Unknown, "blorp", "🤖 Sorry"},
	}
	for _, tt := range tests {
		if got := h.Dispatch(ctx, tt.intent, tt.text); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("Dispatch(%s, %q) = %q, want prefix %q", tt.intent, tt.text, got, tt.prefix)
		}
	}
}
