// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/angelmondragon/healthtrack-backend/pkg/config"
	"github.com/angelmondragon/healthtrack-backend/pkg/db"
	"github.com/angelmondragon/healthtrack-backend/pkg/migrate"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Config returns a SQLite configuration private to the running test.
func Config(t testing.TB) config.DBConfig {
	t.Helper()
	name := unsafeName.ReplaceAllString(t.Name(), "_")
	return config.DBConfig{
		Driver:       config.DBDriverSQLite,
		DSN:          "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	}
}

// New opens a fresh database with every migration applied. It is closed
// when the test ends.
func New(t testing.TB) *db.Client {
	t.Helper()
	ctx := context.Background()

	client, err := db.New(ctx, Config(t), nil)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.SQL()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	if err := migrate.Up(ctx, sqlDB, client.Dialect()); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return client
}
