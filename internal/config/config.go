// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

// Package config provides configuration loading, merging, and validation
// for the oxex-horses client binaries.
//
// Configuration is assembled from multiple sources in the following
// priority order (the first source to set a field wins; later sources
// only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which builds the merged view
// and applies deployment defaults.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the outbound transport settings shared by every API
	// call.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings (the credential slot).
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound HTTP transport.
type Adapter struct {
	// BaseURL is the backend root including the API base path,
	// e.g. "https://oxex.example.com/api".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// StateDir is the directory where per-deployment credential files
	// are kept.
	// Env: STORAGE_STATE_DIR
	StateDir string `env:"STATE_DIR"`
}

// getStructuredConfig loads and merges the configuration from all
// available sources in priority order (the first non-zero value wins):
// environment variables, command-line flags, then the JSON file whose
// path was resolved from the first two.
func getStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
