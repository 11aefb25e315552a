package tbbx

import (
	"crypto"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"
)

var (
	//ErrEncoding payload could not be converted to DER
	ErrEncoding = errors.New("encoding failed")
)

//EncodeHash wraps a raw digest as a DER-encoded ASN.1 OCTET STRING. Any
//digest length is accepted; enforcing a particular algorithm's size is the
//caller's policy
func EncodeHash(digest []byte) ([]byte, error) {
	der, err := asn1.Marshal(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEncoding, err)
	}

	return der, nil
}

//EncodeCounter encodes a counter value as a minimal DER ASN.1 INTEGER.
//Negative values encode per the two's-complement INTEGER rules
func EncodeCounter(value int64) ([]byte, error) {
	der, err := asn1.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEncoding, err)
	}

	return der, nil
}

//EncodePublicKey encodes a public key as a DER SubjectPublicKeyInfo
//structure. The output is sized to the actual encoding; keys of any length
//encode without truncation
func EncodePublicKey(pub crypto.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: nil public key", ErrEncoding)
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEncoding, err)
	}

	return der, nil
}
