package repository

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fundsbot/fundsbot/internal/models"
)

// whereClause renders the WHERE part of an aggregate query for f. Income has
// no category column, so category filters are rejected when allowCategory is
// false.
func whereClause(f models.Filter, allowCategory bool) (string, []any, error) {
	switch f.Kind {
	case models.FilterAll:
		return "", nil, nil
	case models.FilterCategory:
		if !allowCategory {
			return "", nil, errors.New("category filter is not supported for income")
		}
		if _, ok := models.ParseCategory(string(f.Category)); !ok {
			return "", nil, errors.Errorf("unknown category %q", f.Category)
		}
		return " WHERE category = $1", []any{string(f.Category)}, nil
	case models.FilterMonth:
		return " WHERE month = $1 AND year = $2", []any{f.Month, f.Year}, nil
	case models.FilterDate:
		return " WHERE date = $1", []any{f.DateString()}, nil
	default:
		return "", nil, errors.Errorf("unknown filter kind %d", f.Kind)
	}
}

func sumQuery(table string, f models.Filter, allowCategory bool) (string, []any, error) {
	where, args, err := whereClause(f, allowCategory)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("SELECT COALESCE(SUM(amount), 0)::text FROM %s%s", table, where), args, nil
}

func parseSum(raw string) (decimal.Decimal, error) {
	total, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "parse sum %q", raw)
	}
	return total, nil
}
