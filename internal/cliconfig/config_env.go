package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (IRCSEND_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", os.Getenv("IRCSEND_HOST"), &cfg.Host)
	s.setString("numerics", os.Getenv("IRCSEND_NUMERICS_FILE"), &cfg.NumericsFile)
	s.setString("log-level", os.Getenv("IRCSEND_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("names-limit", os.Getenv("IRCSEND_NAMES_LIMIT"), &cfg.NamesLimit); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("IRCSEND_WATCH"), &cfg.Watch)

	return nil
}
