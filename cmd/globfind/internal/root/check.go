// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/globtree/globtree/modules/glob"
)

func newCheckCmd(g *Globals) *cobra.Command {
	var candidate string
	cmd := &cobra.Command{
		Use:   "check <pattern>",
		Short: "Parse pattern and report its variance, boundedness and invariant prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gl, err := glob.Parse(args[0])
			if err != nil {
				return err
			}
			tree := gl.Tree()
			fmt.Printf("expression:      %s\n", tree.Expression)
			fmt.Printf("depth:           %v\n", tree.Depth())
			fmt.Printf("breadth:         %v\n", tree.Breadth())
			fmt.Printf("rooted:          %v\n", tree.IsRooted())
			fmt.Printf("terminal:        %v\n", gl.IsTerminal())
			if v := tree.Variance(); v.IsInvariant() {
				text, _ := v.InvariantText()
				fmt.Printf("variance:        invariant %q\n", text)
			} else {
				fmt.Printf("variance:        variant (%v)\n", v.Boundedness())
			}
			if candidate != "" {
				if _, ok := gl.Match(candidate); ok {
					fmt.Printf("%q matches\n", candidate)
				} else {
					fmt.Printf("%q does not match\n", candidate)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&candidate, "candidate", "", "report whether this path matches the pattern")
	return cmd
}
