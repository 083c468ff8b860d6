package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "sqlite minimal",
			cfg:  Config{Backend: BackendSQLite},
		},
		{
			name: "sqlite with data dir",
			cfg:  Config{Backend: BackendSQLite, DataDir: "/tmp/loom"},
		},
		{
			name: "postgres with dsn",
			cfg:  Config{Backend: BackendPostgres, DSN: "postgres://localhost/loom"},
		},
		{
			name:    "empty backend",
			cfg:     Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Backend: "mysql"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{Backend: BackendPostgres},
			wantErr: ErrDSNRequired,
		},
		{
			name:    "negative max conns",
			cfg:     Config{Backend: BackendSQLite, MaxConns: -1},
			wantErr: ErrMaxConnsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigPoolSize(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{
			name: "sqlite default",
			cfg:  Config{Backend: BackendSQLite},
			want: DefaultSQLiteConns,
		},
		{
			name: "postgres default",
			cfg:  Config{Backend: BackendPostgres},
			want: DefaultPostgresConns,
		},
		{
			name: "explicit wins",
			cfg:  Config{Backend: BackendPostgres, MaxConns: 4},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.PoolSize())
		})
	}
}
