// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfoUnknown is reported for build metadata that was not injected by
// the linker.
const BuildInfoUnknown = "N/A"

// AppBuildInfo carries build-time metadata set with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with
// [BuildInfoUnknown].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// HasVersion reports whether a version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != "" && a.Version != BuildInfoUnknown
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}

func orUnknown(s string) string {
	if s == "" {
		return BuildInfoUnknown
	}
	return s
}
