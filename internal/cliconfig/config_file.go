package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML layout of the config file.
type FileConfig struct {
	Host         string `toml:"host"`
	NumericsFile string `toml:"numerics_file"`
	NamesLimit   int    `toml:"names_limit"`
	Watch        *bool  `toml:"watch"`
	LogLevel     string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.ircsend/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".ircsend", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
// A relative numerics_file is resolved against the config file's directory
// when dir is not empty.
func ApplyFileConfig(cfg *Config, fc FileConfig, dir string, changed map[string]bool) error {
	s := newConfigSetter(changed)

	numerics := fc.NumericsFile
	if numerics != "" && dir != "" && !filepath.IsAbs(numerics) {
		numerics = filepath.Join(dir, numerics)
	}

	s.setString("host", fc.Host, &cfg.Host)
	s.setString("numerics", numerics, &cfg.NumericsFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setInt("names-limit", fc.NamesLimit, &cfg.NamesLimit)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
