// Package main is the entry point for the vnetplan CLI.
//
// vnetplan is a command-line tool for planning and provisioning virtual
// network address space on Hetzner Cloud. It deterministically carves a
// parent block into per-zone subnets and materializes them as networks,
// subnets and firewalls.
//
// Commands: init, plan, apply, version, completion.
//
// For detailed usage information, run:
//
//	vnetplan --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/vnetplan/cmd/vnetplan/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
