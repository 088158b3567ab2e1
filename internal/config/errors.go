// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidDeployment indicates an unknown deployment label.
	ErrInvalidDeployment = errors.New("invalid deployment")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, missing base URL or non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
