// Package controller exposes the data-access client the routing layer and
// CLI call into. A Client wraps one Store handle; construct it explicitly at
// process startup and close it on shutdown. There is no package-level
// singleton.
package controller

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/loomworks/loom/internal/store"
	"github.com/loomworks/loom/pkg/types"
)

// Client is the generic data-access client. The typed helpers in this
// package all forward to the five generic primitives.
type Client struct {
	store *store.Store
	log   *zap.SugaredLogger
}

// Open connects the backing store and returns a client bound to it.
func Open(ctx context.Context, cfg types.Config, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	st, err := store.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Client{store: st, log: log.Sugar().With("component", "controller")}, nil
}

// Close releases the underlying store.
func (c *Client) Close() error { return c.store.Close() }

// DB exposes the pool for callers that manage their own transactions.
func (c *Client) DB() *sql.DB { return c.store.DB() }

// Create stores a new entity and returns it with uid and timestamps set.
func (c *Client) Create(ctx context.Context, obj types.Object) (types.Object, error) {
	return c.store.Create(ctx, nil, obj)
}

// Get returns the entity the filters refer to, or nil when nothing matches.
func (c *Client) Get(ctx context.Context, kind types.Kind, f types.Filters) (types.Object, error) {
	return c.store.Get(ctx, nil, kind, f)
}

// Update merges fields into the resolved entity and returns the result, or
// nil when nothing matches. Update never creates.
func (c *Client) Update(ctx context.Context, kind types.Kind, f types.Filters, fields map[string]any) (types.Object, error) {
	return c.store.Update(ctx, nil, kind, f, fields)
}

// Delete removes every entity matching the filters; deleting none is not an
// error.
func (c *Client) Delete(ctx context.Context, kind types.Kind, f types.Filters) error {
	return c.store.Delete(ctx, nil, kind, f)
}

// List returns the entities matching the filters, shaped by the output mode.
func (c *Client) List(ctx context.Context, kind types.Kind, lf types.ListFilters, mode types.OutputMode) ([]any, error) {
	return c.store.List(ctx, nil, kind, lf, mode)
}

// WithTx variants run inside a caller-supplied transaction; the caller owns
// commit and rollback.

// CreateTx is Create inside tx.
func (c *Client) CreateTx(ctx context.Context, tx *sql.Tx, obj types.Object) (types.Object, error) {
	return c.store.Create(ctx, tx, obj)
}

// GetTx is Get inside tx.
func (c *Client) GetTx(ctx context.Context, tx *sql.Tx, kind types.Kind, f types.Filters) (types.Object, error) {
	return c.store.Get(ctx, tx, kind, f)
}

// UpdateTx is Update inside tx.
func (c *Client) UpdateTx(ctx context.Context, tx *sql.Tx, kind types.Kind, f types.Filters, fields map[string]any) (types.Object, error) {
	return c.store.Update(ctx, tx, kind, f, fields)
}

// DeleteTx is Delete inside tx.
func (c *Client) DeleteTx(ctx context.Context, tx *sql.Tx, kind types.Kind, f types.Filters) error {
	return c.store.Delete(ctx, tx, kind, f)
}
