package mirror

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/marketadmin/internal/client/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// dialect ties a database/sql driver to its goose dialect, migration
// directory and placeholder style.
type dialect struct {
	driver      string
	goose       string
	dir         string
	placeholder sq.PlaceholderFormat
}

var (
	sqliteDialect   = dialect{driver: "sqlite", goose: "sqlite3", dir: "sqlite", placeholder: sq.Question}
	postgresDialect = dialect{driver: "pgx", goose: "postgres", dir: "postgres", placeholder: sq.Dollar}
)

// dialectFor picks PostgreSQL for postgres:// URLs and SQLite for anything
// else, which is then taken as a file path or SQLite URI.
func dialectFor(dsn string) dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return postgresDialect
	}
	return sqliteDialect
}

// dialectOf maps an open handle back to its dialect.
func dialectOf(db *sqlx.DB) dialect {
	if db.DriverName() == postgresDialect.driver {
		return postgresDialect
	}
	return sqliteDialect
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = goose.UpContext

// RunMigrations brings the mirror schema up to date.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	d := dialectOf(db)
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db.DB, d.dir)
}

// Open opens the mirror database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	d := dialectFor(dsn)
	db, err := sqlx.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open mirror database: %w", err)
	}
	if d.driver == sqliteDialect.driver {
		// SQLite serializes writers; one connection avoids "database is locked".
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate mirror database: %w", err)
	}
	return db, nil
}
