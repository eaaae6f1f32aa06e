package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOrCreateGeneratesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Settings.Port)
	assert.Equal(t, DefaultToken, cfg.Settings.Token)

	// The generated file must match the layout the settings dialog parses.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Settings]\nport=8767\ntoken=default-token-12345\n", string(content))
}

func TestLoadOrCreateKeepsExistingFile(t *testing.T) {
	path := writeConfig(t, "[Settings]\nport=9000\ntoken=my-secret\n")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(9000), cfg.Settings.Port)
	assert.Equal(t, "my-secret", cfg.Settings.Token)

	// Loading must not rewrite the file.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Settings]\nport=9000\ntoken=my-secret\n", string(content))
}

func TestLoadDefaultsForMissingKeys(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantPort  uint16
		wantToken string
	}{
		{
			name:      "empty settings section",
			content:   "[Settings]\n",
			wantPort:  DefaultPort,
			wantToken: DefaultToken,
		},
		{
			name:      "port only",
			content:   "[Settings]\nport=9001\n",
			wantPort:  9001,
			wantToken: DefaultToken,
		},
		{
			name:      "token only",
			content:   "[Settings]\ntoken=abc\n",
			wantPort:  DefaultPort,
			wantToken: "abc",
		},
		{
			name:      "unparseable port keeps default",
			content:   "[Settings]\nport=not-a-number\ntoken=abc\n",
			wantPort:  DefaultPort,
			wantToken: "abc",
		},
		{
			name:      "out of range port keeps default",
			content:   "[Settings]\nport=99999\ntoken=abc\n",
			wantPort:  DefaultPort,
			wantToken: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPort, cfg.Settings.Port)
			assert.Equal(t, tt.wantToken, cfg.Settings.Token)
		})
	}
}

func TestLoadLoggingSection(t *testing.T) {
	path := writeConfig(t, "[Settings]\nport=8767\ntoken=t\n[Logging]\nlevel=debug\ndevelopment=true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	path := writeConfig(t, "[Settings]\nport=8767\ntoken=t\n[Logging]\nlevel=verbose\n")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	original := &Config{
		Settings: Settings{Port: 12345, Token: "round-trip-token"},
		Logging:  Logging{Level: "warn", Development: true},
	}
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveOmitsDefaultLoggingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Default().Save(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "[Logging]")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Settings.Port = 0 }, true},
		{"empty token", func(c *Config) { c.Settings.Token = "" }, true},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"error level", func(c *Config) { c.Logging.Level = "error" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Settings.Token = ""

	assert.Error(t, cfg.Save(path))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAddrIsLoopback(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8767", Default().Settings.Addr())
	assert.Equal(t, "127.0.0.1:9000", Settings{Port: 9000, Token: "t"}.Addr())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}
