// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package cmd

const (
	// Version current Test Unit version
	Version = "0.3.1"

	// BuildDate latest commit/release date
	BuildDate = "2026-08-29"

	// MinimumGoVersion minimum required Go version for Test Unit
	MinimumGoVersion = ">= go1.17"
)
