// Package config loads and validates the TOML configuration file.
//
// Configuration is optional: every setting has a default, so the tool
// works without a file. When present, the file is resolved from an
// explicit --config path, then ~/.config/srtsync/config.toml, then a
// project-local srtsync.toml.
package config
