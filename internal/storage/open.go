package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gymkeeper/internal/filex"
	"github.com/dmitrijs2005/gymkeeper/internal/storage/kv"
	"github.com/dmitrijs2005/gymkeeper/internal/storage/migrations"
)

// Backend names accepted by Open.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Options selects and locates the key/value backend.
type Options struct {
	Backend     string
	DSN         string // sqlite file name or postgres connection string
	DataDir     string // directory for relative sqlite file names
	RedisAddr   string
	RedisPrefix string
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations in dir using the given
// goose dialect. Re-running is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, dir)
}

// Open bootstraps the configured backend and returns it with a closer that
// releases its connections.
func Open(ctx context.Context, opts Options) (kv.Repository, func() error, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return openSQLite(ctx, opts)
	case BackendPostgres:
		return openPostgres(ctx, opts)
	case BackendRedis:
		return openRedis(ctx, opts)
	case BackendMemory:
		return kv.NewMemoryRepository(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

func openSQLite(ctx context.Context, opts Options) (kv.Repository, func() error, error) {
	dsn := opts.DSN
	if dsn == "" {
		dsn = "gym.db"
	}
	if dsn != ":memory:" {
		path, err := filex.DataFile(opts.DataDir, dsn)
		if err != nil {
			return nil, nil, err
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}
	// one writer keeps :memory: databases on a single connection and avoids
	// SQLITE_BUSY on files
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, "sqlite3", migrations.SQLiteDir); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("sqlite migrations: %w", err)
	}
	return kv.NewSQLiteRepository(db), db.Close, nil
}

func openPostgres(ctx context.Context, opts Options) (kv.Repository, func() error, error) {
	db, err := sql.Open("pgx", opts.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("postgres ping: %w", err)
	}
	if err := RunMigrations(ctx, db, "pgx", migrations.PostgresDir); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("postgres migrations: %w", err)
	}
	return kv.NewPostgresRepository(db), db.Close, nil
}

func openRedis(ctx context.Context, opts Options) (kv.Repository, func() error, error) {
	client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	prefix := opts.RedisPrefix
	if prefix == "" {
		prefix = kv.DefaultRedisPrefix
	}
	return kv.NewRedisRepository(client, prefix), client.Close, nil
}
