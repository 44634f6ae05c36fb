package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/extract"
	"github.com/fundsbot/fundsbot/internal/format"
	"github.com/fundsbot/fundsbot/internal/models"
)

const categoryPrompt = "❓ Which category would you like to see? (e.g., show expenses for food, travel, groceries)"

func (h *Handlers) handleCheckBalance(ctx context.Context) string {
	income, expenses, err := h.totals(ctx, models.AllRecords())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to check balance")
		return "❌ Database error while checking balance."
	}
	return format.Balance(income, expenses)
}

func (h *Handlers) handleShowByCategory(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return "❓ Which category would you like to see?"
	}

	category, matched := extract.Category(text)
	if !matched && !extract.MentionsOthers(text) {
		return categoryPrompt
	}

	total, err := h.store.SumExpenses(ctx, models.ByCategory(category))
	if err != nil {
		h.log.Error().Err(err).Str("category", category.String()).Msg("failed to sum category")
		return fmt.Sprintf("❌ Database error while showing category %s.", category)
	}
	if total.IsPositive() {
		return fmt.Sprintf("📊 Total spent on %s: %s", category, format.Money(total))
	}

	exists, err := h.store.ExpenseCategoryExists(ctx, category)
	if err != nil {
		h.log.Error().Err(err).Str("category", category.String()).Msg("failed to check category records")
		return fmt.Sprintf("❌ Database error while showing category %s.", category)
	}
	if exists {
		return fmt.Sprintf("📊 Total spent on %s: %s", category, format.Money(total))
	}
	return fmt.Sprintf("📊 No expenses recorded for the category '%s' yet.", category)
}

func (h *Handlers) handleShowByMonth(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return "❌ Could not determine the month. Please specify a month name."
	}

	month, ok := extract.Month(text)
	if !ok {
		return "❌ Could not determine the month. Please specify a month name (e.g., 'summary for April')."
	}
	year, ok := extract.Year(text)
	if !ok {
		year = h.extract.CurrentTime().Year()
	}

	income, expenses, err := h.totals(ctx, models.ByMonth(month, year))
	if err != nil {
		h.log.Error().Err(err).Int("month", month).Int("year", year).Msg("failed to summarise month")
		return fmt.Sprintf("❌ Database error while showing month %d.", month)
	}

	title := format.MonthYear(month, year)
	if expenses.IsZero() && income.IsZero() {
		return fmt.Sprintf("📅 No records found for %s.", title)
	}
	return format.Summary(title, expenses, income)
}

func (h *Handlers) handleShowByDate(ctx context.Context, text string) string {
	date := h.extract.Date(text)
	h.logDate("show_by_date", date)

	income, expenses, err := h.totals(ctx, models.ByDate(date.Date))
	if err != nil {
		h.log.Error().Err(err).Str("date", date.String()).Msg("failed to summarise date")
		return fmt.Sprintf("❌ Database error while showing date %s.", date)
	}

	if expenses.IsZero() && income.IsZero() {
		today := h.extract.CurrentTime().Format(models.DateLayout)
		if date.String() == today {
			return fmt.Sprintf("📅 No income or expenses recorded for today (%s) yet.", today)
		}
		return fmt.Sprintf("📅 No records found for %s.", date)
	}
	return format.Summary(date.String(), expenses, income)
}

func (h *Handlers) totals(ctx context.Context, f models.Filter) (income, expenses decimal.Decimal, err error) {
	income, err = h.store.SumIncome(ctx, f)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	expenses, err = h.store.SumExpenses(ctx, f)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return income, expenses, nil
}
