package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// sqliteUnicodeDriver is sqlite3 with lower() replaced by a Unicode-aware
// version, so name search folds "Ó" like postgres does.
const sqliteUnicodeDriver = "sqlite3_unicode"

func init() {
	sql.Register(sqliteUnicodeDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

func openDriver(driverName, dsn string) (*sqlx.DB, error) {
	if driverName != DriverSQLite {
		return sqlx.Open(driverName, dsn)
	}
	raw, err := sql.Open(sqliteUnicodeDriver, dsn)
	if err != nil {
		return nil, err
	}
	// Keep the sqlite3 name for placeholder rebinding and migrations.
	return sqlx.NewDb(raw, DriverSQLite), nil
}

// Open opens and pings a database for the given driver and DSN.
func Open(ctx context.Context, driverName, dsn string) (*sqlx.DB, error) {
	switch driverName {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driverName)
	}
	db, err := openDriver(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	if driverName == DriverSQLite {
		// Every sqlite connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driverName, err)
	}
	return db, nil
}
