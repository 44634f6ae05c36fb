package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/database"
	"github.com/fundsbot/fundsbot/internal/models"
)

// Store groups the Postgres repositories behind the handlers' storage methods.
type Store struct {
	Expenses *ExpenseRepository
	Income   *IncomeRepository
}

func NewStore(db *database.DB) *Store {
	return &Store{
		Expenses: NewExpenseRepository(db),
		Income:   NewIncomeRepository(db),
	}
}

func (s *Store) InsertExpense(ctx context.Context, e *models.Expense) error {
	return s.Expenses.Create(ctx, e)
}

func (s *Store) InsertIncome(ctx context.Context, in *models.Income) error {
	return s.Income.Create(ctx, in)
}

func (s *Store) SumExpenses(ctx context.Context, f models.Filter) (decimal.Decimal, error) {
	return s.Expenses.Sum(ctx, f)
}

func (s *Store) SumIncome(ctx context.Context, f models.Filter) (decimal.Decimal, error) {
	return s.Income.Sum(ctx, f)
}

func (s *Store) ExpenseCategoryExists(ctx context.Context, c models.Category) (bool, error) {
	return s.Expenses.CategoryExists(ctx, c)
}
