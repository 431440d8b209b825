package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaultsFile(t *testing.T) {
	cfg, err := Load("defaults.yaml")
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.API.Port)
	assert.Equal(t, "memory", cfg.DatabaseConfig.Driver)
	assert.Equal(t, "votes", cfg.MessengerConfig.Kafka.Topic)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  testMode: true
database:
  driver: mysql
  mysql:
    host: db
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.API.TestMode)
	assert.Equal(t, 5000, cfg.API.Port)
	assert.Equal(t, "db", cfg.DatabaseConfig.Mysql.Host)
	assert.Equal(t, 3306, cfg.DatabaseConfig.Mysql.Port)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "database:\n  driver: postgres\n"},
		{name: "half tls", content: "tls:\n  cert: cert.crt\n"},
		{name: "bad port", content: "grpc:\n  port: 0\n"},
		{name: "malformed", content: "api: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
