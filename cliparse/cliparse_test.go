// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"PORT", "DATABASE_URL", "DATABASE_TYPE", "SECRET_KEY", "ADMIN_USERNAME",
	"ADMIN_PASSWORD", "TOKEN_TTL", "ADMIN_PAGE", "LOG_LEVEL", "LOG_FORMAT",
}

// setRequiredEnv blanks every config variable, then sets the two secrets
func setRequiredEnv(t *testing.T) {
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("ADMIN_PASSWORD", "test-password")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, DatabaseSQLite, cfg.DatabaseType)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseFlags_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "file:resume.db", cfg.DatabaseURL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:cli.db", "-secret-key", "s1", "-admin-password", "p1", "-token-ttl", "1h"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "s1", cfg.SecretKey)
	assert.Equal(t, "p1", cfg.AdminPassword)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing secret key",
			env:  map[string]string{"SECRET_KEY": "", "ADMIN_PASSWORD": "pw"},
		},
		{
			name: "missing admin password",
			env:  map[string]string{"SECRET_KEY": "key", "ADMIN_PASSWORD": ""},
		},
		{
			name: "invalid port",
			env:  map[string]string{"SECRET_KEY": "key", "ADMIN_PASSWORD": "pw", "PORT": "eighty"},
		},
		{
			name: "invalid token ttl",
			env:  map[string]string{"SECRET_KEY": "key", "ADMIN_PASSWORD": "pw", "TOKEN_TTL": "forever"},
		},
		{
			name: "unknown database type",
			env:  map[string]string{"SECRET_KEY": "key", "ADMIN_PASSWORD": "pw"},
			args: []string{"-t", "mysql"},
		},
		{
			name: "postgres without url",
			env:  map[string]string{"SECRET_KEY": "key", "ADMIN_PASSWORD": "pw", "DATABASE_URL": ""},
			args: []string{"-t", "postgres"},
		},
		{
			name: "invalid log level",
			env:  map[string]string{"SECRET_KEY": "key", "ADMIN_PASSWORD": "pw", "LOG_LEVEL": "loud"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range configEnv {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
