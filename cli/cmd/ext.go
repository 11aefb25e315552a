package cmd

import (
	"github.com/spf13/cobra"
	extCmds "github.com/tcfw/fwcert/cli/cmd/ext"
)

var (
	extCmd = &cobra.Command{
		Use:   "ext",
		Short: "Manage TBB certificate extensions",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
)

func init() {
	extCmds.Attach(extCmd)
}
