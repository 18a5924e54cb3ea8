// Package config loads engine configuration from YAML files and environment
// variables.
//
// Load searches standard locations for a config.yml and a .env file, loads
// the .env into the process environment, reads the YAML through viper with
// automatic env-var override, and unmarshals into Config. Defaults are
// applied before validation so a zero Config is always usable:
//
//	var cfg config.Config
//	if err := config.Load("transcriptkit", &cfg); err != nil { ... }
//	sess, err := editor.NewSession(cfg, result, duration, log)
package config
