package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Storage.Driver = DriverSQLite
	cfg.Storage.DSN = "file::memory:"

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing signing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.SecretKey.Access = "   "

		assert.ErrorIs(t, cfg.Validate(), ErrMissingSigningSecret)
	})

	t.Run("missing storage dsn", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.DSN = ""

		assert.ErrorIs(t, cfg.Validate(), ErrMissingStorageDSN)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Driver = "mongodb"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported storage driver")
	})

	t.Run("negative token ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.Auth = &AuthConfig{TokenTTL: -time.Minute}

		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_TokenTTL(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, time.Hour, cfg.TokenTTL())

	cfg.Auth = &AuthConfig{TokenTTL: 15 * time.Minute}
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL())
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
storage:
  driver: sqlite
  dsn: ""
secretKey:
  access: ""
auth:
  tokenTTL: 1h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobboard-test.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("STORAGE_DSN", "file:test.db")
	t.Setenv("AUTH_TOKENTTL", "30m")

	cfg, err := LoadWithEnv[Config]("jobboard-test")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, "file:test.db", cfg.Storage.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL())
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("STORAGE_REPLICA_0_DSN", "postgres://replica-0")
	t.Setenv("STORAGE_REPLICA_1_DSN", "postgres://replica-1")

	assert.Equal(t, []string{"postgres://replica-0", "postgres://replica-1"}, buildReplicasFromEnv())
}
