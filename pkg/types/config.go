package types

import "errors"

// Supported backend names.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Default pool sizes. The embedded backend is effectively single-writer;
// the networked backend fans out.
const (
	DefaultSQLiteConns   = 1
	DefaultPostgresConns = 16
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrDSNRequired     = errors.New("postgres backend requires a dsn")
	ErrMaxConnsInvalid = errors.New("max_conns must not be negative")
)

// Config selects and parameterizes the backing store.
type Config struct {
	Backend  string `json:"backend" yaml:"backend" mapstructure:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	DSN      string `json:"dsn" yaml:"dsn" mapstructure:"dsn"`
	MaxConns int    `json:"max_conns" yaml:"max_conns" mapstructure:"max_conns"`
}

// Validate checks that the Config is well-formed, returning a sentinel error
// on failure.
func (c Config) Validate() error {
	switch c.Backend {
	case "":
		return ErrBackendEmpty
	case BackendSQLite:
	case BackendPostgres:
		if c.DSN == "" {
			return ErrDSNRequired
		}
	default:
		return ErrBackendUnknown
	}
	if c.MaxConns < 0 {
		return ErrMaxConnsInvalid
	}
	return nil
}

// PoolSize returns the effective connection limit for the configured backend.
func (c Config) PoolSize() int {
	if c.MaxConns > 0 {
		return c.MaxConns
	}
	if c.Backend == BackendPostgres {
		return DefaultPostgresConns
	}
	return DefaultSQLiteConns
}
