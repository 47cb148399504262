// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device runtime.
//
// It wires configuration, the local snapshot store, the HTTP transport and
// the synchronization engine into a single process lifecycle, and runs the
// periodic resync job alongside application workers.
package client
