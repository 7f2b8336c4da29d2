package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty file keeps defaults",
			yaml: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelInfo, cfg.LogLevel)
				assert.Equal(t, "localhost:8080", cfg.WebAddress)
				assert.NotEmpty(t, cfg.DBFilepath)
				assert.Zero(t, cfg.SessionTTL)
			},
		},
		{
			name: "overrides merge over defaults",
			yaml: "web_address: \"127.0.0.1:3000\"\nsession_ttl: 24h\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "127.0.0.1:3000", cfg.WebAddress)
				assert.Equal(t, Duration(24*time.Hour), cfg.SessionTTL)
				assert.Equal(t, LevelInfo, cfg.LogLevel)
			},
		},
		{
			name:    "bad log level fails validation",
			yaml:    `log_level: loud`,
			wantErr: "config validation failed",
		},
		{
			name:    "empty web address fails validation",
			yaml:    `web_address: ""`,
			wantErr: "config validation failed",
		},
		{
			name:    "bad duration",
			yaml:    `session_ttl: soon`,
			wantErr: "invalid duration",
		},
		{
			name:    "invalid yaml syntax",
			yaml:    `invalid: [yaml: content`,
			wantErr: "failed to unmarshal config file",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestConfig(t, test.yaml)
			cfg, err := Load(path)

			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if test.check != nil {
				test.check(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	require.ErrorContains(t, err, "failed to read config file")
	assert.Nil(t, cfg)
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}
