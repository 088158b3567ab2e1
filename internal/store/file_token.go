// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type fileTokenStore struct {
	path string

	mu    sync.RWMutex
	token string
}

type persistedToken struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// NewFileTokenStore opens (or creates on first Save) a JSON-file-backed
// token slot at path. The file holds a single token; distinct deployments
// must use distinct paths.
func NewFileTokenStore(path string) (TokenStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty token store path")
	}

	s := &fileTokenStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileTokenStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read token file: %w", err)
	}

	var st persistedToken
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode token file: %w", err)
	}

	s.token = st.Token
	return nil
}

func (s *fileTokenStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create token store dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(persistedToken{Token: s.token, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Load implements [TokenStore].
func (s *fileTokenStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrTokenNotFound
	}
	return s.token, nil
}

// Save implements [TokenStore].
func (s *fileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = strings.TrimSpace(token)
	return s.persist()
}

// Clear implements [TokenStore]. It removes the backing file so a fresh
// start observes an empty slot.
func (s *fileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
