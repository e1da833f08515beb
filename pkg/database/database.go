package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Kind identifies the backend selected by DATABASE_URL.
type Kind string

const (
	KindNone     Kind = "none"
	KindMongo    Kind = "mongodb"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
)

var ErrUnsupportedURL = errors.New("unsupported database url scheme")

// DetectKind maps a connection string to a backend. An empty string means
// no store is configured.
func DetectKind(url string) (Kind, error) {
	switch {
	case url == "":
		return KindNone, nil
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return KindMongo, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return KindPostgres, nil
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		return KindSQLite, nil
	default:
		return KindNone, ErrUnsupportedURL
	}
}

// Store is the connection handle shared by every request. Exactly one of
// Mongo or SQL is set when Kind is not KindNone.
type Store struct {
	Kind  Kind
	Name  string
	Mongo *mongo.Database
	SQL   *gorm.DB

	client *mongo.Client
}

// Open connects to the backend named by url. A nil error with Kind None
// means the caller runs without a store.
func Open(ctx context.Context, url, name string, timeout time.Duration) (*Store, error) {
	kind, err := DetectKind(url)
	if err != nil {
		return nil, err
	}

	store := &Store{Kind: kind, Name: name}
	switch kind {
	case KindMongo:
		client, db, err := ConnectMongo(ctx, url, name, timeout)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		store.client = client
		store.Mongo = db
	case KindPostgres:
		db, err := ConnectPostgres(url)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store.SQL = db
	case KindSQLite:
		db, err := ConnectSQLite(sqlitePath(url))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		store.SQL = db
		store.Name = sqlitePath(url)
	}
	return store, nil
}

func sqlitePath(url string) string {
	return strings.TrimPrefix(url, "sqlite://")
}

// Available reports whether a backend is connected.
func (s *Store) Available() bool {
	return s != nil && (s.Mongo != nil || s.SQL != nil)
}

// Collections lists collection (or table) names, at most limit of them.
func (s *Store) Collections(ctx context.Context, limit int) ([]string, error) {
	var names []string
	var err error

	switch {
	case s.Mongo != nil:
		names, err = s.Mongo.ListCollectionNames(ctx, bson.D{})
	case s.SQL != nil:
		names, err = s.userTables(ctx)
	default:
		return nil, errors.New("store not configured")
	}
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *Store) userTables(ctx context.Context) ([]string, error) {
	tables, err := s.SQL.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tables))
	for _, t := range tables {
		if strings.HasPrefix(t, "sqlite_") {
			continue
		}
		names = append(names, t)
	}
	return names, nil
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	switch {
	case s == nil:
		return nil
	case s.client != nil:
		return s.client.Disconnect(ctx)
	case s.SQL != nil:
		sqlDB, err := s.SQL.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
