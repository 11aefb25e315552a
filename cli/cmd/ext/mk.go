package ext

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tcfw/fwcert/tbbx"
	"golang.org/x/crypto/sha3"
)

var (
	mkCmd = &cobra.Command{
		Use:   "mk",
		Short: "Encode a single TBB extension value to DER",
		Long:  "Encodes a hash, counter or public key payload as the DER value of a TBB extension. Exactly one of --hash, --digest, --counter or --key must be given",
		Run: func(cmd *cobra.Command, args []string) {
			err := runMk(cmd)
			if err != nil {
				fmt.Printf("[error] %s\n", err.Error())
				os.Exit(1)
			}
		},
	}

	mkCmdOID      string
	mkCmdOut      string
	mkCmdCritical bool
	mkCmdHash     string
	mkCmdDigest   string
	mkCmdCounter  string
	mkCmdKey      string
)

func init() {
	mkCmd.Flags().StringVarP(&mkCmdOID, "oid", "i", "", "extension OID (must be in the TBB catalog)")
	mkCmd.Flags().StringVarP(&mkCmdOut, "out", "o", "", "output file (defaults to stdout as hex)")
	mkCmd.Flags().BoolVarP(&mkCmdCritical, "critical", "c", false, "mark the extension critical")

	mkCmd.Flags().StringVar(&mkCmdHash, "hash", "", "file to digest with SHA3-256")
	mkCmd.Flags().StringVar(&mkCmdDigest, "digest", "", "precomputed digest in hex")
	mkCmd.Flags().StringVar(&mkCmdCounter, "counter", "", "counter value")
	mkCmd.Flags().StringVar(&mkCmdKey, "key", "", "public key file (PEM SubjectPublicKeyInfo)")

	mkCmd.MarkFlagRequired("oid")
}

func runMk(cmd *cobra.Command) error {
	r, err := tbbx.NewTBBRegistry()
	if err != nil {
		return fmt.Errorf("initialising registry: %s", err)
	}

	ext, err := mkExtension(r)
	if err != nil {
		return err
	}

	if mkCmdOut == "" {
		fmt.Printf("%s\n", hex.EncodeToString(ext.Value))
		return nil
	}

	return ioutil.WriteFile(mkCmdOut, ext.Value, 0644)
}

func mkExtension(r *tbbx.Registry) (ext pkix.Extension, err error) {
	switch {
	case mkCmdHash != "":
		b, err := ioutil.ReadFile(mkCmdHash)
		if err != nil {
			return ext, fmt.Errorf("reading payload: %s", err)
		}
		digest := sha3.Sum256(b)
		return r.NewHashExtension(mkCmdOID, mkCmdCritical, digest[:])

	case mkCmdDigest != "":
		digest, err := hex.DecodeString(mkCmdDigest)
		if err != nil {
			return ext, fmt.Errorf("decoding digest: %s", err)
		}
		return r.NewHashExtension(mkCmdOID, mkCmdCritical, digest)

	case mkCmdCounter != "":
		v, err := strconv.ParseInt(mkCmdCounter, 10, 64)
		if err != nil {
			return ext, fmt.Errorf("parsing counter: %s", err)
		}
		return r.NewCounterExtension(mkCmdOID, mkCmdCritical, v)

	case mkCmdKey != "":
		b, err := ioutil.ReadFile(mkCmdKey)
		if err != nil {
			return ext, fmt.Errorf("reading key: %s", err)
		}

		block, _ := pem.Decode(b)
		if block == nil {
			return ext, fmt.Errorf("no PEM block in key file")
		}

		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return ext, fmt.Errorf("parsing key: %s", err)
		}

		return r.NewKeyExtension(mkCmdOID, mkCmdCritical, pub)

	default:
		return ext, fmt.Errorf("one of --hash, --digest, --counter or --key is required")
	}
}
