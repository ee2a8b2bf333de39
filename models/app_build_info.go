// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is build metadata injected with -ldflags and shown in the
// client's about overlay.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo returns build info, substituting "N/A" for empty values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the release version.
func (a AppBuildInfo) Version() string { return a.version }

// Date returns the build date.
func (a AppBuildInfo) Date() string { return a.date }

// Commit returns the source commit.
func (a AppBuildInfo) Commit() string { return a.commit }

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
