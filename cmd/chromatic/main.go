// Chromatic - colour conversion and comparison
//
// Chromatic converts colours between device and CIE colour spaces, measures
// perceptual differences and builds gradients from the command line.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/chromatic/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
