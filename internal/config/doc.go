// Package config provides configuration loading, merging, and validation
// facilities for the device runtime and the reference shadow store.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetDeviceConfig] for the device runtime and
// [GetServerConfig] for the shadow store server.
package config
