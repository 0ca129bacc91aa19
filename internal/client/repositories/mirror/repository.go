package mirror

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/dbx"
	"github.com/jmoiron/sqlx"
)

const (
	recordsTable   = "fallback_records"
	sequencesTable = "fallback_sequences"
)

type recordRow struct {
	ID   int64  `db:"record_id"`
	Body []byte `db:"body"`
}

// Repository implements fallback.Mirror on SQLite or PostgreSQL.
type Repository struct {
	db  *sqlx.DB
	sb  sq.StatementBuilderType
	now func() time.Time
}

var _ fallback.Mirror = (*Repository)(nil)

// NewRepository builds queries in the placeholder style of db's driver.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(dialectOf(db).placeholder),
		now: time.Now,
	}
}

// Load returns the stored snapshot of resource, or nil when none was saved.
func (r *Repository) Load(ctx context.Context, resource string) (*fallback.Snapshot, error) {
	query, args, err := r.sb.Select("next_id").From(sequencesTable).
		Where(sq.Eq{"resource": resource}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sequence query: %w", err)
	}

	var snap fallback.Snapshot
	if err := r.db.GetContext(ctx, &snap.NextID, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load sequence[%s]: %w", resource, err)
	}

	query, args, err = r.sb.Select("record_id", "body").From(recordsTable).
		Where(sq.Eq{"resource": resource}).OrderBy("position ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build records query: %w", err)
	}

	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load records[%s]: %w", resource, err)
	}

	snap.Records = make([]fallback.SnapshotRecord, 0, len(rows))
	for _, row := range rows {
		snap.Records = append(snap.Records, fallback.SnapshotRecord{ID: row.ID, Body: json.RawMessage(row.Body)})
	}
	return &snap, nil
}

// Save replaces the snapshot of resource.
func (r *Repository) Save(ctx context.Context, resource string, snap fallback.Snapshot) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query, args, err := r.sb.Delete(recordsTable).Where(sq.Eq{"resource": resource}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to clear records[%s]: %w", resource, err)
		}

		if len(snap.Records) > 0 {
			ins := r.sb.Insert(recordsTable).Columns("resource", "record_id", "position", "body")
			for i, rec := range snap.Records {
				ins = ins.Values(resource, rec.ID, i, []byte(rec.Body))
			}
			query, args, err = ins.ToSql()
			if err != nil {
				return fmt.Errorf("build insert: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to save records[%s]: %w", resource, err)
			}
		}

		query, args, err = r.sb.Insert(sequencesTable).
			Columns("resource", "next_id", "saved_at").
			Values(resource, snap.NextID, r.now().UTC().Format(time.RFC3339Nano)).
			Suffix("ON CONFLICT(resource) DO UPDATE SET next_id = excluded.next_id, saved_at = excluded.saved_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build sequence upsert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save sequence[%s]: %w", resource, err)
		}
		return nil
	})
}

// Clear removes every stored snapshot.
func (r *Repository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{recordsTable, sequencesTable} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// Resources lists the resources that have a stored snapshot.
func (r *Repository) Resources(ctx context.Context) ([]string, error) {
	query, args, err := r.sb.Select("resource").From(sequencesTable).OrderBy("resource").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resources query: %w", err)
	}
	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list mirrored resources: %w", err)
	}
	return out, nil
}
