// Package config manages ftactl settings stored at ~/.fta/config.yaml, with
// FTA_-prefixed environment variables taking precedence. Only the operator
// command reads it; the pass-through fta command and the launcher package
// never do.
package config
