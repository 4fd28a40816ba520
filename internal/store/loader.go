// Package store persists normalized expenditure records to Postgres.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/housespending/ingest/internal/expense"
)

// Table is the destination table for expenditure rows.
const Table = "expenditures"

// ErrEmptyRecord is returned for a record with no non-empty fields; an
// INSERT with no column list is never valid.
var ErrEmptyRecord = errors.New("record has no fields to insert")

// Conn is the slice of a pgx connection the loader needs. One Conn is
// dialed per record and closed once the insert commits.
type Conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// ConnectFunc dials a new store connection.
type ConnectFunc func(ctx context.Context) (Conn, error)

// PgxConnector returns a ConnectFunc that dials the given Postgres URL.
func PgxConnector(url string) ConnectFunc {
	return func(ctx context.Context) (Conn, error) {
		return pgx.Connect(ctx, url)
	}
}

// StoreError wraps any failure from the destination store: connect,
// insert, or commit.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Loader inserts one record per statement and returns the id the store
// generated for it. Each insert runs on its own connection in its own
// single-statement transaction; nothing is shared across records.
type Loader struct {
	connect ConnectFunc
}

// NewLoader returns a Loader that dials a fresh connection per insert.
func NewLoader(connect ConnectFunc) *Loader {
	return &Loader{connect: connect}
}

// Insert writes rec into the expenditures table and returns the generated
// id. The column list is built from the canonical field enumeration only,
// in enumeration order, and values are bound parameters; raw input can
// never reach the statement text.
func (l *Loader) Insert(ctx context.Context, rec expense.Record) (int64, error) {
	cols := make([]string, 0, len(rec))
	args := make([]any, 0, len(rec))
	for _, field := range expense.Fields {
		value, ok := rec[field]
		if !ok {
			continue
		}
		cols = append(cols, string(field))
		args = append(args, value)
	}

	if len(cols) == 0 {
		return 0, &StoreError{Op: "insert", Err: ErrEmptyRecord}
	}
	if len(cols) != len(rec) {
		return 0, &StoreError{Op: "insert", Err: fmt.Errorf("record contains %d fields outside the canonical set", len(rec)-len(cols))}
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	conn, err := l.connect(ctx)
	if err != nil {
		return 0, &StoreError{Op: "connect", Err: err}
	}
	defer conn.Close(ctx)

	var id int64
	if err := conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, &StoreError{Op: "insert", Err: err}
	}
	return id, nil
}
