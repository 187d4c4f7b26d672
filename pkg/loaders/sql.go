package loaders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/rowpipe/rowpipe/pkg/database"
	"github.com/rowpipe/rowpipe/pkg/etl"
)

// SQLLoader writes every dataset row into a table. Plain mode inserts all
// rows; with Upsert set it updates the row matching KeyColumn and inserts
// when no match exists.
type SQLLoader struct {
	ConnURL string
	Table   string
	// KeyColumn identifies existing rows in upsert mode.
	KeyColumn string
	Upsert    bool
	Logger    hclog.Logger
}

var _ etl.Loader = &SQLLoader{}

func (l *SQLLoader) Load(ctx context.Context, data *etl.Dataset) error {
	if l.Upsert && l.KeyColumn == "" {
		return errors.New("SQLLoader in upsert mode needs a KeyColumn")
	}

	log := l.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	db, err := database.Open(ctx, l.ConnURL)
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, updated := 0, 0
	for i, row := range data.Rows {
		if !l.Upsert {
			if err := l.insert(ctx, db, data.Columns, row); err != nil {
				return fmt.Errorf("inserting row %d: %w", i, err)
			}
			inserted++
			continue
		}

		exists, err := l.exists(ctx, db, row)
		if err != nil {
			return fmt.Errorf("checking row %d: %w", i, err)
		}
		if exists {
			if err := l.update(ctx, db, data.Columns, row); err != nil {
				return fmt.Errorf("updating row %d: %w", i, err)
			}
			updated++
		} else {
			if err := l.insert(ctx, db, data.Columns, row); err != nil {
				return fmt.Errorf("inserting row %d: %w", i, err)
			}
			inserted++
		}
	}

	log.Info("SQL load done", "table", l.Table, "inserted", inserted, "updated", updated)
	return nil
}

func (l *SQLLoader) exists(ctx context.Context, db *sql.DB, row etl.Record) (bool, error) {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = %s",
		l.Table, l.KeyColumn, database.Placeholder(l.ConnURL, 1))

	var one int
	err := db.QueryRowContext(ctx, query, row[l.KeyColumn]).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (l *SQLLoader) insert(ctx context.Context, db *sql.DB, columns []string, row etl.Record) error {
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		placeholders[i] = database.Placeholder(l.ConnURL, i+1)
		args[i] = row[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		l.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	_, err := db.ExecContext(ctx, query, args...)
	return err
}

func (l *SQLLoader) update(ctx context.Context, db *sql.DB, columns []string, row etl.Record) error {
	var clauses []string
	var args []any
	for _, col := range columns {
		if col == l.KeyColumn {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s = %s", col, database.Placeholder(l.ConnURL, len(args)+1)))
		args = append(args, row[col])
	}
	if len(clauses) == 0 {
		return nil
	}

	args = append(args, row[l.KeyColumn])
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		l.Table, strings.Join(clauses, ", "), l.KeyColumn, database.Placeholder(l.ConnURL, len(args)))
	_, err := db.ExecContext(ctx, query, args...)
	return err
}
