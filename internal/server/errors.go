// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created: http handler and address are required")
	errShutdownTimedOut    = errors.New("shadow store shutdown timed out")
)
