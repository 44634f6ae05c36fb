// Package app assembles the chat core from configuration.
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fundsbot/fundsbot/internal/ai"
	"github.com/fundsbot/fundsbot/internal/config"
	"github.com/fundsbot/fundsbot/internal/database"
	"github.com/fundsbot/fundsbot/internal/extract"
	"github.com/fundsbot/fundsbot/internal/handlers"
	"github.com/fundsbot/fundsbot/internal/intent"
	"github.com/fundsbot/fundsbot/internal/logger"
	"github.com/fundsbot/fundsbot/internal/mongostore"
	"github.com/fundsbot/fundsbot/internal/repository"
)

// App holds the wired handlers and the resources to release on shutdown.
type App struct {
	Handlers *handlers.Handlers
	closers  []func(context.Context) error
}

// Build loads the classifier, opens the configured store and wires the
// handlers. Any failure here is fatal for the caller.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	resolver, err := NewResolver(cfg, log)
	if err != nil {
		return nil, err
	}

	a := &App{}
	store, err := a.openStore(ctx, cfg, log)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	ex := extract.New(extract.ParseAmountPick(cfg.AmountPick))
	a.Handlers = handlers.New(store, resolver, ex, cfg.SpecialImagePath, log)
	return a, nil
}

// NewResolver loads the classifier artifact and adds the LLM fallback when
// configured.
func NewResolver(cfg *config.Config, log zerolog.Logger) (*intent.Resolver, error) {
	classifier, err := intent.LoadBayesClassifier(cfg.ClassifierPath)
	if err != nil {
		return nil, err
	}
	log.Info().Strs("classes", classifier.Classes()).Msg("intent classifier loaded")

	var fallback intent.Predictor
	if cfg.AIEnabled() {
		client := ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel, intent.Labels())
		fallback = intent.NewLLMClassifier(client)
		log.Info().Str("model", cfg.AIModel).Msg("LLM fallback classifier enabled")
	}

	return intent.NewResolver(classifier, fallback, log), nil
}

func (a *App) openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (handlers.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.New(ctx, cfg.DatabaseURI, log)
		if err != nil {
			return nil, errors.Wrap(err, "connect to database")
		}
		a.closers = append(a.closers, func(context.Context) error {
			db.Close()
			return nil
		})
		log.Info().Msg("connected to database")

		if err := db.Migrate(ctx); err != nil {
			return nil, errors.Wrap(err, "run migrations")
		}
		return repository.NewStore(db), nil

	case config.StoreDriverMongo:
		client, err := mongostore.Connect(logger.WithContext(ctx, log), cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		return mongostore.New(mongostore.NewDatabaseProvider(client, cfg.MongoDatabase)), nil

	default:
		return nil, errors.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// Close releases the store connections in reverse order of opening.
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i](ctx)
	}
	a.closers = nil
}
