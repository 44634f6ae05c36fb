package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/database"
	"github.com/fundsbot/fundsbot/internal/models"
)

type ExpenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO expenses (id, date, category, month, year, amount)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, e.Date, string(e.Category), e.Month, e.Year, e.Amount.String(),
		)
		return err
	})
	return errors.Wrap(err, "insert expense")
}

func (r *ExpenseRepository) Sum(ctx context.Context, f models.Filter) (decimal.Decimal, error) {
	query, args, err := sumQuery("expenses", f, true)
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	if err := r.db.Pool.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return decimal.Zero, errors.Wrap(err, "sum expenses")
	}
	return parseSum(raw)
}

func (r *ExpenseRepository) CategoryExists(ctx context.Context, c models.Category) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM expenses WHERE category = $1)`,
		string(c),
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "check expense category")
	}
	return exists, nil
}
