package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loom/pkg/types"
)

func TestOpenRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.Config
		wantErr error
	}{
		{
			name:    "empty backend",
			cfg:     types.Config{},
			wantErr: types.ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			cfg:     types.Config{Backend: "oracle"},
			wantErr: types.ErrBackendUnknown,
		},
		{
			name:    "postgres without dsn",
			cfg:     types.Config{Backend: types.BackendPostgres},
			wantErr: types.ErrDSNRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(context.Background(), tt.cfg, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := t.TempDir() + "/nested/data"
	s, err := Open(context.Background(), types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestOpenIdempotentSchema(t *testing.T) {
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	ctx := context.Background()

	s, err := Open(ctx, cfg, nil)
	require.NoError(t, err)
	createProject(t, s, "alpha", "")
	require.NoError(t, s.Close())

	// Reopening the same database must not disturb existing rows.
	s, err = Open(ctx, cfg, nil)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, nil, types.KindProject, types.Filters{Name: "alpha"})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		in      string
		want    string
	}{
		{
			name:    "sqlite keeps placeholders",
			backend: types.BackendSQLite,
			in:      "SELECT * FROM t WHERE a = ? AND b = ?",
			want:    "SELECT * FROM t WHERE a = ? AND b = ?",
		},
		{
			name:    "postgres numbers placeholders",
			backend: types.BackendPostgres,
			in:      "SELECT * FROM t WHERE a = ? AND b = ?",
			want:    "SELECT * FROM t WHERE a = $1 AND b = $2",
		},
		{
			name:    "postgres no placeholders",
			backend: types.BackendPostgres,
			in:      "DELETE FROM t",
			want:    "DELETE FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Store{backend: tt.backend}
			assert.Equal(t, tt.want, s.rebind(tt.in))
		})
	}
}

func TestNewUIDDistinct(t *testing.T) {
	a, b := newUID(), newUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestClassifyPassesThroughSentinels(t *testing.T) {
	for _, sentinel := range []error{
		types.ErrDuplicate, types.ErrConflict, types.ErrValidation, types.ErrStorage,
	} {
		wrapped := fmt.Errorf("%w: detail", sentinel)
		assert.ErrorIs(t, classify("op", wrapped), sentinel)
	}
}

func TestClassifyUnknownBecomesStorage(t *testing.T) {
	err := classify("op", errors.New("disk on fire"))
	assert.ErrorIs(t, err, types.ErrStorage)
	assert.Contains(t, err.Error(), "op")
}
