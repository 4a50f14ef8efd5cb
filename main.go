// Copyright (c) 2026 CipherShield Team
// CipherShield - password toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for CipherShield.
//
// Usage:
//
//	go run . [flags]
//	./ciphershield [check|criteria|version] [flags]
//
// Without a subcommand the interactive strength checker starts. See --help
// for options.
package main

import (
	"os"

	"github.com/ciphershield/ciphershield/internal/logging"
	"github.com/ciphershield/ciphershield/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
