// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Command globfind is a CLI front end for modules/glob: it walks a
// directory tree matching a glob pattern, optionally fingerprinting and
// caching the result.
package main

import (
	"fmt"
	"os"

	"github.com/globtree/globtree/cmd/globfind/internal/root"
)

func main() {
	if err := root.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
