// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFileName_PerDeployment(t *testing.T) {
	assert.Equal(t, "token.json", tokenFileName(DeploymentClient))
	assert.Equal(t, "admin_token.json", tokenFileName(DeploymentAdmin))
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Deployment:     DeploymentClient,
			BaseURL:        "http://localhost:8080/api",
			RequestTimeout: 15 * time.Second,
			TokenFile:      "/tmp/oxex/token.json",
		}
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Deployment = "dashboard"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidDeployment)

	cfg = valid()
	cfg.BaseURL = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.TokenFile = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}
