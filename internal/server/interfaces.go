// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// SIGINT, SIGTERM or SIGQUIT is received. All servers are then shut down
	// gracefully.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
