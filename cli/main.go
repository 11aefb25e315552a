package main

import "github.com/tcfw/fwcert/cli/cmd"

func main() {
	cmd.Execute()
}
