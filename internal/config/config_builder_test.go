// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigBuilder_FirstSourceWins verifies the merge precedence: a
// field set by an earlier source is kept, later sources only fill fields
// still unset.
func TestConfigBuilder_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Adapter: Adapter{BaseURL: "http://first:8080/api"},
		},
		&StructuredConfig{
			Adapter: Adapter{
				BaseURL:        "http://second:8080/api",
				RequestTimeout: 30 * time.Second,
			},
			Storage: Storage{StateDir: "/var/lib/oxex"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "http://first:8080/api", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/oxex", cfg.Storage.StateDir)
}
