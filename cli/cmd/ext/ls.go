package ext

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tcfw/fwcert/tbbx"
)

var (
	lsCmd = &cobra.Command{
		Use:   "ls",
		Short: "List the TBB extension catalog",
		Run: func(cmd *cobra.Command, args []string) {
			err := runLs(cmd)
			if err != nil {
				fmt.Printf("[error] %s\n", err.Error())
				os.Exit(1)
			}
		},
	}
)

func runLs(cmd *cobra.Command) error {
	r, err := tbbx.NewTBBRegistry()
	if err != nil {
		return fmt.Errorf("initialising registry: %s", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NID\tOID\tNAME\tTYPE")

	for _, reg := range r.Registered() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", reg.NID, reg.OID, reg.ShortName, reg.Type())
	}

	return w.Flush()
}
