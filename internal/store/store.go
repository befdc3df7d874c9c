// Package store opens the configured persistence backend and hands out its
// repositories. The Store is owned by the caller and must be closed.
package store

import (
	"context"
	"fmt"

	"yelpcamp/internal/config"
	"yelpcamp/internal/database"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/repository/dynamostore"
	"yelpcamp/internal/repository/mongostore"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store is an open persistence backend
type Store struct {
	Driver      string
	Campgrounds repository.CampgroundRepositoryInterface
	Reviews     repository.ReviewRepositoryInterface
	Tx          repository.Transactor

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open connects to the backend selected by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	log := logger.WithContext(ctx).WithField("driver", cfg.StoreDriver)

	var (
		s   *Store
		err error
	)
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		s, err = openGorm(database.DialectPostgres, cfg.DatabaseURL, cfg)
	case config.DriverSQLite:
		s, err = openGorm(database.DialectSQLite, cfg.SQLitePath, cfg)
	case config.DriverMongo:
		s, err = openMongo(ctx, cfg)
	case config.DriverDynamoDB:
		s, err = openDynamo(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStoreDriver, cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	log.Info("store opened")
	return s, nil
}

func openGorm(dialect, dsn string, cfg *config.Config) (*Store, error) {
	opts := &database.Options{}
	if cfg.IsDevelopment() && cfg.LogLevel == "debug" {
		opts.LogLevel = gormlogger.Info
	}
	db, err := database.Initialize(dialect, dsn, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", dialect, err)
	}
	return FromGorm(cfg.StoreDriver, db), nil
}

// FromGorm wraps an already opened SQL database
func FromGorm(driver string, db *gorm.DB) *Store {
	repos := repository.NewGormRepositories(db)
	return &Store{
		Driver:      driver,
		Campgrounds: repos.Campgrounds,
		Reviews:     repos.Reviews,
		Tx:          repository.NewGormTransactor(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error { return database.Close(db) },
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open mongo store: %w", err)
	}
	repos := mongostore.NewRepositories(client.Database(cfg.MongoDatabase))
	return &Store{
		Driver:      config.DriverMongo,
		Campgrounds: repos.Campgrounds,
		Reviews:     repos.Reviews,
		Tx:          repository.PassThrough{Repos: repos},
		ping:        func(ctx context.Context) error { return client.Ping(ctx, nil) },
		close:       client.Disconnect,
	}, nil
}

func openDynamo(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := database.NewDynamoClient(ctx, cfg.DynamoRegion, cfg.DynamoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to open dynamodb store: %w", err)
	}
	tables := dynamostore.TableNames(cfg.DynamoTablePrefix)
	if err := dynamostore.EnsureTables(ctx, client, tables); err != nil {
		return nil, fmt.Errorf("failed to prepare dynamodb tables: %w", err)
	}
	repos := dynamostore.NewRepositories(client, tables)
	return &Store{
		Driver:      config.DriverDynamoDB,
		Campgrounds: repos.Campgrounds,
		Reviews:     repos.Reviews,
		Tx:          repository.PassThrough{Repos: repos},
		ping:        func(ctx context.Context) error { return dynamostore.Ping(ctx, client, tables) },
		close:       func(context.Context) error { return nil },
	}, nil
}

// Repositories returns the store's repositories outside any transaction
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{Campgrounds: s.Campgrounds, Reviews: s.Reviews}
}

// Ping reports whether the backend is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
