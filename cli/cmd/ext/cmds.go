package ext

import "github.com/spf13/cobra"

//Attach attaches the ext commands to a root/parent command
func Attach(parent *cobra.Command) {
	parent.AddCommand(lsCmd)
	parent.AddCommand(showCmd)
	parent.AddCommand(mkCmd)
}
