// Config loading for the loomctl CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/loomworks/loom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyDSN      = "dsn"
	cfgKeyMaxConns = "max_conns"

	defaultConfigDir = ".loom"
	defaultDataDir   = ".loom-db"

	configDirEnv = "LOOM_CONFIG_DIR"
	dataDirEnv   = "LOOM_DATA_DIR"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# loomctl configuration

# Backend selection: sqlite (embedded) or postgres (networked).
backend: sqlite

# Data directory for the embedded backend (overridable by --data-dir).
# data_dir:

# Connection string for the postgres backend.
# dsn:

# Connection pool limit (0 uses the backend default).
# max_conns: 0
`

// resolveConfigDir returns the configuration directory: --config-dir flag,
// then LOOM_CONFIG_DIR, then $(CWD)/.loom.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if env := os.Getenv(configDirEnv); env != "" {
		return env
	}
	return defaultConfigDir
}

// loadStoreConfig reads config.yaml and folds in the flag and environment
// overrides, returning the store configuration.
func loadStoreConfig() (types.Config, error) {
	configDir := resolveConfigDir()

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		// A missing config.yaml is not an error; defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  v.GetString(cfgKeyDataDir),
		DSN:      v.GetString(cfgKeyDSN),
		MaxConns: v.GetInt(cfgKeyMaxConns),
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	} else if cfg.DataDir == "" {
		if env := os.Getenv(dataDirEnv); env != "" {
			cfg.DataDir = env
		} else {
			cfg.DataDir = defaultDataDir
		}
	}
	return cfg, cfg.Validate()
}

// writeDefaultConfig creates the config directory and a default config.yaml
// when none exists.
func writeDefaultConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	path := filepath.Join(configDir, configFileName+"."+configFileType)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
