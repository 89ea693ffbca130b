// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version exposes build metadata. The variables are overwritten at
// release time via -ldflags; a source build reports the development defaults.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the released version, or the development placeholder.
	Version = "0.0.0-development"

	// GitCommit identifies the commit the binary was built from.
	GitCommit = "unknown"

	// BuildDate is the release build timestamp.
	BuildDate = "unknown"
)

// Info renders the one-line version banner for --version.
func Info() string {
	return fmt.Sprintf("parrot-check %s (commit: %s, built: %s, go: %s, platform: %s)",
		Version, GitCommit, BuildDate, runtime.Version(), platform())
}

// Full returns the build metadata as a map for the health and version
// endpoints.
func Full() map[string]string {
	return map[string]string{
		"version":   Version,
		"commit":    GitCommit,
		"buildDate": BuildDate,
		"goVersion": runtime.Version(),
		"platform":  platform(),
	}
}

func platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
