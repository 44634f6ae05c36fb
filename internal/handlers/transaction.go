package handlers

import (
	"context"
	"fmt"

	"github.com/fundsbot/fundsbot/internal/format"
	"github.com/fundsbot/fundsbot/internal/models"
)

func (h *Handlers) handleAddExpense(ctx context.Context, text string) string {
	slots := h.extract.Slots(text)
	h.log.Debug().
		Str("amount", slots.Amount.String()).
		Bool("has_amount", slots.HasAmount).
		Str("category", slots.Category.String()).
		Str("date", slots.Date.String()).
		Str("date_source", slots.Date.Source.String()).
		Msg("expense slots")

	if !slots.HasAmount {
		return "❌ Sorry, I couldn't find the amount. Please specify the amount spent (e.g., 'spent 50 on food')."
	}
	if slots.Category == models.CategoryOthers && !slots.MentionsOthers {
		return fmt.Sprintf("❓ Got %s for %s. Which category should I assign this to? (e.g., food, transport, etc.)",
			format.Money(slots.Amount), slots.Date)
	}
	h.logDate("add_expense", slots.Date)

	expense := models.NewExpense(slots.Date.Date, slots.Category, slots.Amount)
	if err := h.store.InsertExpense(ctx, expense); err != nil {
		h.log.Error().Err(err).Str("id", expense.ID).Msg("failed to insert expense")
		return "❌ Database error while adding expense."
	}

	return fmt.Sprintf("✅ %s added to %s on %s", format.Money(expense.Amount), expense.Category, expense.DateString())
}

func (h *Handlers) handleAddIncome(ctx context.Context, text string) string {
	amount, ok := h.extract.Amount(text)
	if !ok {
		return "❌ Please provide a valid amount for the income."
	}

	date := h.extract.Date(text)
	h.logDate("add_income", date)

	income := models.NewIncome(date.Date, amount, h.extract.CurrentTime())
	if err := h.store.InsertIncome(ctx, income); err != nil {
		h.log.Error().Err(err).Str("id", income.ID).Msg("failed to insert income")
		return "❌ Database error while adding income."
	}

	return fmt.Sprintf("✅ Income of %s added on %s", format.Money(income.Amount), income.DateString())
}
