package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// FileName is the configuration file stored beside the executable.
const FileName = "file_agent.ini"

// Defaults applied when the file or a key is missing.
const (
	DefaultPort  uint16 = 8767
	DefaultToken        = "default-token-12345"

	defaultLevel = "info"
)

func init() {
	// The companion application edits this file; keep the exact
	// key=value layout it expects, no alignment spaces.
	ini.PrettyFormat = false
}

// Config mirrors file_agent.ini. A loaded value is immutable for the
// lifetime of a server instance; changes take effect only through a
// reload-and-restart cycle driven by the supervisor.
type Config struct {
	Settings Settings
	Logging  Logging
}

// Settings is the [Settings] section consumed by the API server.
type Settings struct {
	Port  uint16 `ini:"port" validate:"required"`
	Token string `ini:"token" validate:"required"`
}

// Logging is the optional [Logging] section for the structured logger.
type Logging struct {
	Level       string `ini:"level" validate:"required,oneof=debug info warn error"`
	Development bool   `ini:"development"`
}

// Default returns the configuration generated on first run.
func Default() *Config {
	return &Config{
		Settings: Settings{
			Port:  DefaultPort,
			Token: DefaultToken,
		},
		Logging: Logging{
			Level:       defaultLevel,
			Development: false,
		},
	}
}

// Path returns the configuration file path beside the running executable.
// If the executable path cannot be resolved, the working directory is used.
func Path() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load parses the file at path. Missing keys fall back to defaults and
// unparseable values keep the default, matching what the settings dialog
// tolerates; only an unreadable or structurally broken file is an error.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := Default()

	settings := file.Section("Settings")
	if port := settings.Key("port").MustUint(uint(DefaultPort)); port > 0 && port <= 65535 {
		cfg.Settings.Port = uint16(port)
	}
	cfg.Settings.Token = settings.Key("token").MustString(DefaultToken)

	logging := file.Section("Logging")
	cfg.Logging.Level = logging.Key("level").MustString(defaultLevel)
	cfg.Logging.Development = logging.Key("development").MustBool(false)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrCreate loads the file at path, generating and persisting the
// default configuration when the file does not exist yet.
func LoadOrCreate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = Default()
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("failed to persist default config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path in the fixed layout the
// companion application parses:
//
//	[Settings]
//	port=8767
//	token=default-token-12345
//
// A [Logging] section is emitted only when it differs from the default.
func (c *Config) Save(path string) error {
	if err := Validate(c); err != nil {
		return err
	}

	file := ini.Empty()

	settings, err := file.NewSection("Settings")
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}
	settings.Key("port").SetValue(fmt.Sprintf("%d", c.Settings.Port))
	settings.Key("token").SetValue(c.Settings.Token)

	if c.Logging != Default().Logging {
		logging, err := file.NewSection("Logging")
		if err != nil {
			return fmt.Errorf("failed to build config: %w", err)
		}
		logging.Key("level").SetValue(c.Logging.Level)
		logging.Key("development").SetValue(fmt.Sprintf("%t", c.Logging.Development))
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Addr returns the loopback listen address for the configured port.
func (s Settings) Addr() string {
	return fmt.Sprintf("127.0.0.1:%d", s.Port)
}
