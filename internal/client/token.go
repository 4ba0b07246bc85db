// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const tokenFileName = "token"

// TokenFile persists the session token between client invocations.
type TokenFile struct {
	path string
}

// NewTokenFile returns a [TokenFile] stored at path.
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// DefaultTokenPath returns the token location inside the user config
// directory, e.g. ~/.config/go-contact-keeper/token on Linux.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "go-contact-keeper", tokenFileName), nil
}

// Load returns the stored token, or an empty string if none was saved.
func (f *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes token readable by the current user only.
func (f *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the stored token. A missing file is not an error.
func (f *TokenFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
