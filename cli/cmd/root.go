package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "fwcert",
		Short: "fwcert - Firmware certificate extension tooling",
		Long:  "fwcert manages the custom X.509v3 extensions embedded in firmware chain-of-trust certificates: content hashes, anti-rollback counters and embedded public keys",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
)

//Execute run the fwcert cli
func Execute() {
	setup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() {
	rootCmd.AddCommand(extCmd)
}
