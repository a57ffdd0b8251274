// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries the build metadata stamped into the server binary by
// linker flags. Unset values read as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

const buildInfoUnset = "N/A"

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnset(buildVersion),
		buildDate:    orUnset(buildDate),
		buildCommit:  orUnset(buildCommit),
	}
}

func orUnset(v string) string {
	if v == "" {
		return buildInfoUnset
	}
	return v
}

// HasVersion reports whether a version was stamped at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != buildInfoUnset
}

// BuildVersion returns the version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

func (a AppBuildInfo) String() string {
	return "Build version: " + a.buildVersion + "\nBuild date: " + a.buildDate + "\nBuild commit: " + a.buildCommit + "\n"
}
