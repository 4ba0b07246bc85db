// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFile_LoadMissing(t *testing.T) {
	f := NewTokenFile(filepath.Join(t.TempDir(), "absent"))

	token, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenFile_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	f := NewTokenFile(path)

	require.NoError(t, f.Save("abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, f.Clear())
	token, err = f.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, f.Clear(), "clearing twice is fine")
}

func TestTokenFile_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o600))

	token, err := NewTokenFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestDefaultTokenPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("HOME", "/tmp/home")

	path, err := DefaultTokenPath()
	require.NoError(t, err)
	assert.Equal(t, "go-contact-keeper", filepath.Base(filepath.Dir(path)))
	assert.Equal(t, tokenFileName, filepath.Base(path))
}
