package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "localhost"
user = "rusunawa"
password = "secret"
dbname = "rusunawa"

[tenant_service]
url = "http://tenants:8081"

[redis]
enabled = false

[metrics]
enabled = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 30, cfg.Wizard.SessionTTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "host=localhost port=5432 user=rusunawa password=secret dbname=rusunawa sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RUSUNAWA_DB_PASSWORD", "from-env")
	t.Setenv("RUSUNAWA_DB_PORT", "6543")
	t.Setenv("RUSUNAWA_TENANT_SERVICE_URL", "http://override")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "http://override", cfg.TenantService.URL)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nhttp_port = 70000\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate_RedisRequiresAddr(t *testing.T) {
	cfg := &Config{
		Server:        ServerConfig{HTTPPort: 8080},
		Database:      DatabaseConfig{Host: "db", DBName: "rusunawa"},
		TenantService: TenantServiceConfig{URL: "http://tenants"},
		Redis:         RedisConfig{Enabled: true},
	}

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
