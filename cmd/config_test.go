package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wholesale/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 2*time.Second, cfg.LockTimeout)
	assert.Equal(t, uint64(3), cfg.ConflictRetries)
	assert.Empty(t, cfg.KafkaHost)
	assert.Equal(t, "0 */15 * * * *", cfg.ReorderAlertSchedule)
}

func TestLoadConfig_EnvironmentOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DB_HOST=dotenv-host\nDB_NAME=northwind\n"), 0o600))
	t.Setenv("DB_HOST", "env-host")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.DBHost)
	assert.Equal(t, "northwind", cfg.DBName)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOCK_TIMEOUT", "soon")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "p@ss word",
		DBName:     "wholesale",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5433/wholesale?sslmode=disable", cfg.DSN())
}
