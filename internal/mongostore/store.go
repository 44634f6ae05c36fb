// Package mongostore keeps expenses and income in MongoDB collections.
package mongostore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fundsbot/fundsbot/internal/models"
)

type expenseDoc struct {
	ID       string               `bson:"_id"`
	Date     time.Time            `bson:"date"`
	Category string               `bson:"category"`
	Month    int                  `bson:"month"`
	Year     int                  `bson:"year"`
	Amount   primitive.Decimal128 `bson:"amount"`
}

type incomeDoc struct {
	ID     string               `bson:"_id"`
	Date   time.Time            `bson:"date"`
	Time   string               `bson:"time"`
	Month  int                  `bson:"month"`
	Year   int                  `bson:"year"`
	Amount primitive.Decimal128 `bson:"amount"`
}

type sumResult struct {
	Total primitive.Decimal128 `bson:"total"`
}

type Store struct {
	provider CollectionProvider
}

func New(provider CollectionProvider) *Store {
	return &Store{provider: provider}
}

func (s *Store) InsertExpense(ctx context.Context, e *models.Expense) error {
	amount, err := toDecimal128(e.Amount)
	if err != nil {
		return err
	}

	_, err = s.provider.Collection(ExpensesCollection).InsertOne(ctx, expenseDoc{
		ID:       e.ID,
		Date:     e.Date,
		Category: string(e.Category),
		Month:    e.Month,
		Year:     e.Year,
		Amount:   amount,
	})
	return errors.Wrap(err, "insert expense")
}

func (s *Store) InsertIncome(ctx context.Context, in *models.Income) error {
	amount, err := toDecimal128(in.Amount)
	if err != nil {
		return err
	}

	_, err = s.provider.Collection(IncomeCollection).InsertOne(ctx, incomeDoc{
		ID:     in.ID,
		Date:   in.Date,
		Time:   in.Time,
		Month:  in.Month,
		Year:   in.Year,
		Amount: amount,
	})
	return errors.Wrap(err, "insert income")
}

func (s *Store) SumExpenses(ctx context.Context, f models.Filter) (decimal.Decimal, error) {
	match, err := matchStage(f, true)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := s.sum(ctx, ExpensesCollection, match)
	return total, errors.Wrap(err, "sum expenses")
}

func (s *Store) SumIncome(ctx context.Context, f models.Filter) (decimal.Decimal, error) {
	match, err := matchStage(f, false)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := s.sum(ctx, IncomeCollection, match)
	return total, errors.Wrap(err, "sum income")
}

func (s *Store) ExpenseCategoryExists(ctx context.Context, c models.Category) (bool, error) {
	n, err := s.provider.Collection(ExpensesCollection).CountDocuments(ctx,
		bson.D{{Key: "category", Value: string(c)}},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, errors.Wrap(err, "check expense category")
	}
	return n > 0, nil
}

func (s *Store) sum(ctx context.Context, collection string, match bson.D) (decimal.Decimal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := s.provider.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return decimal.Zero, err
	}

	var results []sumResult
	if err := cursor.All(ctx, &results); err != nil {
		return decimal.Zero, err
	}
	if len(results) == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(results[0].Total.String())
}

func matchStage(f models.Filter, allowCategory bool) (bson.D, error) {
	switch f.Kind {
	case models.FilterAll:
		return bson.D{}, nil
	case models.FilterCategory:
		if !allowCategory {
			return nil, errors.New("category filter is not supported for income")
		}
		if _, ok := models.ParseCategory(string(f.Category)); !ok {
			return nil, errors.Errorf("unknown category %q", f.Category)
		}
		return bson.D{{Key: "category", Value: string(f.Category)}}, nil
	case models.FilterMonth:
		return bson.D{{Key: "month", Value: f.Month}, {Key: "year", Value: f.Year}}, nil
	case models.FilterDate:
		return bson.D{{Key: "date", Value: f.Date}}, nil
	default:
		return nil, errors.Errorf("unknown filter kind %d", f.Kind)
	}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, errors.Wrapf(err, "convert amount %s", d)
	}
	return v, nil
}
