// SPDX-License-Identifier: MIT
// Package: contactnet/cmd/netgen
//
// main.go - entry point.

// Command netgen generates random contact networks and reports their
// structure.
//
//	netgen generate --nodes 1000 --mean-degree 4 --seed 7 --out net.yaml
//	netgen stats --in net.yaml
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
