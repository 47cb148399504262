// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Document is a semi-structured payload exchanged with the shadow store: a
// nested mapping of string keys to heterogeneous JSON values. It is an
// interchange format only and is never retained beyond one synchronization
// step.
type Document = map[string]any

// Well-known sections of a twin document.
const (
	// SectionDesired holds the state the remote authority wants the device
	// to adopt.
	SectionDesired = "desired"
	// SectionReported holds the state the device last asserted.
	SectionReported = "reported"
	// FieldVersion is the monotonically increasing document version kept by
	// the shadow store inside each section.
	FieldVersion = "$version"
)

// UpdateKind tells a patch handler how to interpret an incoming desired-state
// notification.
type UpdateKind int

const (
	// UpdateFull is a complete twin document; its desired section is the
	// effective patch.
	UpdateFull UpdateKind = iota
	// UpdatePartial is a desired-state delta which is itself the effective
	// patch.
	UpdatePartial
)

// String implements fmt.Stringer.
func (k UpdateKind) String() string {
	switch k {
	case UpdateFull:
		return "full"
	case UpdatePartial:
		return "partial"
	default:
		return "unknown"
	}
}

// TwinDocument is the full document kept by the shadow store for a single
// device.
type TwinDocument struct {
	DeviceID string   `json:"device_id,omitempty"`
	Desired  Document `json:"desired"`
	Reported Document `json:"reported"`
}

// PatchFrame is a single push notification sent over the twin stream.
type PatchFrame struct {
	// Kind is either "full" or "partial".
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Frame kinds carried by [PatchFrame.Kind].
const (
	FrameFull    = "full"
	FramePartial = "partial"
)

// UpdateKind converts the textual frame kind into an [UpdateKind].
func (f PatchFrame) UpdateKind() (UpdateKind, bool) {
	switch f.Kind {
	case FrameFull:
		return UpdateFull, true
	case FramePartial:
		return UpdatePartial, true
	default:
		return 0, false
	}
}
