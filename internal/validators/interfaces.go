// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the payloads the shadow
// store accepts from devices.
//
// A Validator checks a value and may restrict the check to a subset of named
// fields. Validators are injected into services, which keeps the transport
// layer free of business rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
