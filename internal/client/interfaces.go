// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable device
// applications.
type Client interface {
	// Run blocks until ctx is cancelled or a worker fails, then releases
	// every resource.
	Run(ctx context.Context) error
}
