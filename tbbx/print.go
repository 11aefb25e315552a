package tbbx

import (
	"encoding/asn1"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	//ErrNoMethod no conversion method bound for the extension
	ErrNoMethod = errors.New("no conversion method")
	//ErrMalformedValue DER value does not decode as the declared type
	ErrMalformedValue = errors.New("malformed extension value")
)

//Method string conversion pair for a DER-encoded extension value
type Method struct {
	Print func(der []byte) (string, error)
	Parse func(s string) ([]byte, error)
}

func methodFor(t ValueType) *Method {
	switch t {
	case Integer:
		return &integerMethod
	case OctetString:
		return &octetStringMethod
	default:
		return nil
	}
}

var integerMethod = Method{
	Print: printInteger,
	Parse: parseInteger,
}

var octetStringMethod = Method{
	Print: printOctetString,
	Parse: parseOctetString,
}

//Print renders a DER-encoded extension value using the conversion method
//bound to the OID, falling back to a raw dump when none is installed
func (r *Registry) Print(oid string, der []byte) (string, error) {
	reg, ok := r.Lookup(oid)
	if !ok {
		return "", fmt.Errorf("%s: %w", oid, ErrUnknownExtension)
	}

	if reg.method == nil || reg.method.Print == nil {
		return dumpRaw(der), nil
	}

	return reg.method.Print(der)
}

//Parse converts a string back into a DER-encoded extension value. Unlike
//Print there is no fallback; extensions without a bound method cannot be
//parsed
func (r *Registry) Parse(oid string, s string) ([]byte, error) {
	reg, ok := r.Lookup(oid)
	if !ok {
		return nil, fmt.Errorf("%s: %w", oid, ErrUnknownExtension)
	}

	if reg.method == nil || reg.method.Parse == nil {
		return nil, fmt.Errorf("%s: %w", oid, ErrNoMethod)
	}

	return reg.method.Parse(s)
}

func printInteger(der []byte) (string, error) {
	var n *big.Int
	rest, err := asn1.Unmarshal(der, &n)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedValue, err)
	}
	if len(rest) != 0 {
		return "", fmt.Errorf("%w: trailing bytes", ErrMalformedValue)
	}

	return n.String(), nil
}

func parseInteger(s string) ([]byte, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: not a decimal integer", ErrMalformedValue)
	}

	return asn1.Marshal(n)
}

func printOctetString(der []byte) (string, error) {
	var b []byte
	rest, err := asn1.Unmarshal(der, &b)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedValue, err)
	}
	if len(rest) != 0 {
		return "", fmt.Errorf("%w: trailing bytes", ErrMalformedValue)
	}

	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}

	return sb.String(), nil
}

func parseOctetString(s string) ([]byte, error) {
	clean := strings.NewReplacer(":", "", " ", "").Replace(strings.TrimSpace(s))

	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedValue, err)
	}

	return asn1.Marshal(b)
}

//dumpRaw prints each byte as its ASCII character if printable, '.' otherwise
func dumpRaw(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 0x20 && c < 0x7f {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}

	return string(out)
}
