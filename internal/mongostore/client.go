package mongostore

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fundsbot/fundsbot/internal/logger"
)

const (
	ExpensesCollection = "expenses"
	IncomeCollection   = "income"
)

// Collection is the subset of *mongo.Collection the store uses.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// CollectionProvider hands out collections by name.
type CollectionProvider interface {
	Collection(name string) Collection
}

// DatabaseProvider adapts *mongo.Database to CollectionProvider.
type DatabaseProvider struct {
	db *mongo.Database
}

func NewDatabaseProvider(client *mongo.Client, database string) *DatabaseProvider {
	return &DatabaseProvider{db: client.Database(database)}
}

func (p *DatabaseProvider) Collection(name string) Collection {
	return p.db.Collection(name)
}

// Connect opens a client and pings the server.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	log := logger.FromContext(ctx)
	log.Debug().Msg("connecting to MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "ping MongoDB")
	}

	log.Info().Msg("connected to MongoDB")
	return client, nil
}
