// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/storm-lzy/oxex-horses/internal/adapter"
)

// Deployment names the two console binaries. The credential slots of the
// two deployments are distinct files and never share state.
const (
	DeploymentClient = "client"
	DeploymentAdmin  = "admin"
)

// ClientConfig is the validated configuration view consumed by the
// application wiring.
type ClientConfig struct {
	// Deployment is the deployment label, one of [DeploymentClient] or
	// [DeploymentAdmin].
	Deployment string
	// BaseURL is the backend root including base path.
	BaseURL string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// TokenFile is the path of this deployment's credential slot.
	TokenFile string
	// Version is the binary version string.
	Version string
}

// GetClientConfig builds the merged configuration, applies defaults for
// the given deployment, and validates the result.
//
// Defaults: base URL http://localhost:8080/api, request timeout
// [adapter.DefaultTimeout], state dir <user config dir>/oxex-horses. The
// credential file name is derived from the deployment ("token.json" for
// the client, "admin_token.json" for the admin console).
func GetClientConfig(deployment string) (*ClientConfig, error) {
	cfg, err := getStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080/api"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = adapter.DefaultTimeout
	}
	if cfg.Storage.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		cfg.Storage.StateDir = filepath.Join(base, "oxex-horses")
	}

	clientCfg := &ClientConfig{
		Deployment:     deployment,
		BaseURL:        cfg.Adapter.BaseURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		TokenFile:      filepath.Join(cfg.Storage.StateDir, tokenFileName(deployment)),
		Version:        cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}

// tokenFileName maps a deployment to its credential slot file. Distinct
// names keep the client and admin sessions fully separate.
func tokenFileName(deployment string) string {
	if deployment == DeploymentAdmin {
		return "admin_token.json"
	}
	return "token.json"
}

func (cfg *ClientConfig) validate() error {
	if cfg.Deployment != DeploymentClient && cfg.Deployment != DeploymentAdmin {
		return ErrInvalidDeployment
	}
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.TokenFile == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}
