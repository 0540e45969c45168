// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package vc provides buildtime information for the dparse binary.
package vc // import "github.com/cadets/dparse/vc"

// Set at link time, e.g.
//
//	go build -ldflags "-X github.com/cadets/dparse/vc.version=$(git describe --tags)"
var (
	// revision of the source tree
	revision = "unknown"
	// buildTimestamp, timestamp of the build
	buildTimestamp = "unknown"
	// version in vX.Y.Z{-N-abbrev} format (via git-describe --tags)
	version = "dev"
)

// Revision of the source tree dparse was built from.
func Revision() string {
	return revision
}

// BuildTimestamp returns the timestamp of the build.
func BuildTimestamp() string {
	return buildTimestamp
}

// Version in vX.Y.Z{-N-abbrev} format.
func Version() string {
	return version
}
