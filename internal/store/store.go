// Package store implements the generic entity persistence layer: one small
// fixed relational schema hosting every Loom entity kind, with typed columns
// for promoted fields, a JSON spec column for everything else, and a side
// table of labels per kind.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/loomworks/loom/pkg/types"
)

// timeLayout is the stored timestamp format. Fixed-width fractional seconds
// keep lexicographic order equal to chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// dbFileName is the embedded database file created under DataDir.
const dbFileName = "loom.db"

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store owns the pooled connection source and the generated schema. All CRUD
// operations run on a Store; each takes an optional caller transaction and
// opens its own when given nil.
type Store struct {
	db      *sql.DB
	backend string
	log     *zap.SugaredLogger
}

// Open connects to the configured backend, bounds the pool, and applies the
// generated schema. Pass a nil logger to disable diagnostics.
func Open(ctx context.Context, cfg types.Config, log *zap.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	var db *sql.DB
	var err error
	switch cfg.Backend {
	case types.BackendSQLite:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = "."
		}
		if err = os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dsn := filepath.Join(dataDir, dbFileName) +
			"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		db, err = sql.Open("sqlite", dsn)
	case types.BackendPostgres:
		db, err = sql.Open("pgx", cfg.DSN)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	db.SetMaxOpenConns(cfg.PoolSize())

	s := &Store{
		db:      db,
		backend: cfg.Backend,
		log:     log.Sugar().With("component", "store"),
	}
	if err := s.applySchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the pool so callers can open their own transactions and pass
// them to the CRUD operations.
func (s *Store) DB() *sql.DB { return s.db }

// begin returns the transaction to run in. When tx is nil the store opens
// its own and reports it as owned; owned transactions are finished by the
// operation, caller transactions are left open.
func (s *Store) begin(ctx context.Context, tx *sql.Tx) (*sql.Tx, bool, error) {
	if tx != nil {
		return tx, false, nil
	}
	own, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: begin: %v", types.ErrStorage, err)
	}
	return own, true, nil
}

// finish commits or rolls back an owned transaction depending on err. Any
// error always means a full rollback before it surfaces.
func (s *Store) finish(tx *sql.Tx, owned bool, err error) error {
	if !owned {
		return err
	}
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Debugw("rollback failed", "error", rbErr)
		}
		return err
	}
	if cErr := tx.Commit(); cErr != nil {
		return fmt.Errorf("%w: commit: %v", types.ErrStorage, cErr)
	}
	return nil
}

// rebind rewrites "?" placeholders to "$N" for the postgres dialect.
func (s *Store) rebind(query string) string {
	if s.backend != types.BackendPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// newUID generates a UUID v7, falling back to v4 if v7 generation fails.
func newUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// classify maps a backend error to the store's error taxonomy: uniqueness
// violations become ErrDuplicate, everything else ErrStorage.
func classify(op string, err error) error {
	if errors.Is(err, types.ErrDuplicate) || errors.Is(err, types.ErrConflict) ||
		errors.Is(err, types.ErrValidation) || errors.Is(err, types.ErrStorage) {
		return err
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s: %v", types.ErrDuplicate, op, err)
	}
	return fmt.Errorf("%w: %s: %v", types.ErrStorage, op, err)
}
