// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, device JWT token
// generation and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey is the key used to store the authenticated device identifier
// in the context.
//
//	ctx := context.WithValue(ctx, utils.DeviceIDCtxKey, "thermostat-01")
var DeviceIDCtxKey = contextKey("deviceID")

// GetDeviceIDFromContext retrieves the device identifier from the context.
//
// Returns the device ID and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
