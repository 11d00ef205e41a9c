// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package root builds globfind's cobra command tree, replacing the
// teacher's in-house kong-based CLI (pkg/kong is a vendored copy of
// alecthomas/kong with no corresponding go.mod entry, so it is not a real
// dependency to build on).
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Globals holds flags shared by every subcommand.
type Globals struct {
	Debug bool
}

// New builds the globfind root command.
func New() *cobra.Command {
	g := &Globals{}
	cmd := &cobra.Command{
		Use:           "globfind",
		Short:         "Walk a directory tree matching a glob pattern",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.Debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&g.Debug, "debug", false, "enable debug logging")
	cmd.AddCommand(newWalkCmd(g), newCheckCmd(g))
	return cmd
}
