// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package shadow keeps a device's application state in sync with its remote
// shadow and delivers telemetry over an asynchronous [transport.Transport].
//
// A [Connection] owns the last-known state of type T. The state changes when
// GetState completes, when SendReportState is accepted, and when the shadow
// store pushes a desired-state patch that changes the decoded value.
//
// # Errors
//
// Failures discovered while the originating call is still on the stack are
// returned to the caller as [*RequestError] (or [*ConnectionError] from
// [Connect]). Failures discovered later, on a transport goroutine, are
// passed to the callback registered with [Connection.OnError]. When no error
// callback is registered those failures are dropped; they are only visible
// in debug logs.
//
// # Callbacks
//
// Each callback class has a single slot. Replacing a slot waits for a
// running invocation of the same class to finish, so a callback must not
// replace its own slot. Callbacks may call any other Connection method
// except Close.
package shadow
