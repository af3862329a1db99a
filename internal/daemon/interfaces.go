// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package daemon

import "context"

// Runner defines the lifecycle contract of the daemon.
type Runner interface {
	// Run starts the daemon and blocks until ctx is cancelled.
	Run(ctx context.Context) error
}

var _ Runner = (*App)(nil)
