package ext

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/fwcert/tbbx"
)

var (
	showCmd = &cobra.Command{
		Use:   "show {file}",
		Short: "Show the TBB extensions carried by a certificate",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := runShow(cmd, args[0])
			if err != nil {
				fmt.Printf("[error] %s\n", err.Error())
				os.Exit(1)
			}
		},
	}
)

func init() {
	showCmd.Flags().BoolP("all", "a", false, "show non-TBB extensions as well")

	viper.BindPFlag("ext.show.all", showCmd.Flags().Lookup("all"))
}

func runShow(cmd *cobra.Command, file string) error {
	r, err := tbbx.NewTBBRegistry()
	if err != nil {
		return fmt.Errorf("initialising registry: %s", err)
	}

	f, err := os.OpenFile(file, os.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("opening file: %s", err)
	}
	defer f.Close()

	b, err := ioutil.ReadAll(io.LimitReader(f, 1<<20))
	if err != nil {
		return fmt.Errorf("reading file: %s", err)
	}

	der := b
	if block, _ := pem.Decode(b); block != nil {
		der = block.Bytes
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return fmt.Errorf("parsing certificate: %s", err)
	}

	all := viper.GetBool("ext.show.all")

	for _, e := range cert.Extensions {
		reg, known := r.Lookup(e.Id.String())
		if !known && !all {
			continue
		}

		name := e.Id.String()
		if known {
			name = reg.ShortName
		}

		crit := ""
		if e.Critical {
			crit = " critical"
		}

		var value string
		if known {
			value, err = r.Print(e.Id.String(), e.Value)
			if err != nil {
				return fmt.Errorf("rendering %s: %s", name, err)
			}
		} else {
			value = fmt.Sprintf("%x", e.Value)
		}

		fmt.Printf("%s (%s)%s:\n    %s\n", name, e.Id, crit, value)
	}

	return nil
}
