// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration structs declare their environment bindings via `env` tags
// (see github.com/caarlos0/env). Each struct type is parsed once per process
// and cached, so independent components can safely load the same config.
package config
