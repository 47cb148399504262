// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// buildInfoUnknown replaces build metadata the linker did not inject.
const buildInfoUnknown = "N/A"

// AppBuildInfo is the build metadata of a binary, injected with -ldflags and
// served by the shadow store on its version endpoint.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty date and commit become
// "N/A"; an empty version is kept so callers can reject it.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: buildVersion,
		Date:    orUnknown(buildDate),
		Commit:  orUnknown(buildCommit),
	}
}

// BuildVersion returns the version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.Version
}

func orUnknown(s string) string {
	if s == "" {
		return buildInfoUnknown
	}
	return s
}
