// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a base URL of the backend including the API base path
//	-state-dir directory for per-deployment credential files
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var stateDir string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Backend base URL")
	flag.StringVar(&stateDir, "state-dir", "", "State directory for credential files")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			StateDir: stateDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
