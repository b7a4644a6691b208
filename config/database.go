package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"station-attendance/store"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// OpenStore connects the backend selected by StoreDriver.
func OpenStore(cfg *AppConfig) (store.Backend, error) {
	switch cfg.StoreDriver {
	case DriverMemory:
		log.Println("Using in-memory store, data is lost on exit")
		return store.NewMemoryBackend(), nil
	case DriverFile:
		log.Printf("Using file store in %s", cfg.DataDir)
		return store.NewFileBackend(cfg.DataDir)
	case DriverMongo:
		client, err := MongoConnect(cfg.MongoString)
		if err != nil {
			return nil, err
		}
		return store.NewMongoBackend(client, cfg.MongoDatabase), nil
	case DriverPostgres, DriverMySQL:
		db, err := OpenSQL(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.NewSQLBackend(db)
	default:
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownDriver, cfg.StoreDriver)
	}
}

func MongoConnect(uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return client, nil
}

func OpenSQL(driver, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	log.Printf("Connected to %s", driver)
	return db, nil
}
