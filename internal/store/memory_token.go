// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package store

import (
	"strings"
	"sync"
)

type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns a [TokenStore] that lives only for the
// process lifetime. Used in tests and for ephemeral sessions.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrTokenNotFound
	}
	return s.token, nil
}

func (s *memoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = strings.TrimSpace(token)
	return nil
}

func (s *memoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return nil
}
