// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	// ErrListen wraps a failure to bind one of the configured addresses.
	ErrListen = errors.New("cannot listen on address")
)
