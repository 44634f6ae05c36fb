package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/database"
	"github.com/fundsbot/fundsbot/internal/models"
)

type IncomeRepository struct {
	db *database.DB
}

func NewIncomeRepository(db *database.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Create(ctx context.Context, in *models.Income) error {
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO income (id, date, time, month, year, amount)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			in.ID, in.Date, in.Time, in.Month, in.Year, in.Amount.String(),
		)
		return err
	})
	return errors.Wrap(err, "insert income")
}

func (r *IncomeRepository) Sum(ctx context.Context, f models.Filter) (decimal.Decimal, error) {
	query, args, err := sumQuery("income", f, false)
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	if err := r.db.Pool.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return decimal.Zero, errors.Wrap(err, "sum income")
	}
	return parseSum(raw)
}
