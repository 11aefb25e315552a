package tbbx

import (
	"crypto"
	"crypto/x509/pkix"
	"fmt"
)

//NewExtension assembles a certificate extension from an already DER-encoded
//value. The OID must be registered. The value is copied; the caller may
//reuse der after the call.
//
//The returned pkix.Extension carries the DER value directly; crypto/x509
//applies the extension's outer OCTET STRING envelope when the certificate is
//serialized, so hash and counter payloads appear double-wrapped on the wire
func (r *Registry) NewExtension(oid string, critical bool, der []byte) (pkix.Extension, error) {
	reg, ok := r.Lookup(oid)
	if !ok {
		return pkix.Extension{}, fmt.Errorf("%s: %w", oid, ErrUnknownExtension)
	}

	v := make([]byte, len(der))
	copy(v, der)

	return pkix.Extension{
		Id:       reg.OID,
		Critical: critical,
		Value:    v,
	}, nil
}

//NewHashExtension builds an extension carrying a raw digest encapsulated in
//an ASN.1 OCTET STRING
func (r *Registry) NewHashExtension(oid string, critical bool, digest []byte) (pkix.Extension, error) {
	der, err := EncodeHash(digest)
	if err != nil {
		return pkix.Extension{}, err
	}

	return r.NewExtension(oid, critical, der)
}

//NewCounterExtension builds an extension carrying a non-volatile counter
//encapsulated in an ASN.1 INTEGER
func (r *Registry) NewCounterExtension(oid string, critical bool, value int64) (pkix.Extension, error) {
	der, err := EncodeCounter(value)
	if err != nil {
		return pkix.Extension{}, err
	}

	return r.NewExtension(oid, critical, der)
}

//NewKeyExtension builds an extension carrying a public key in DER
//SubjectPublicKeyInfo format
func (r *Registry) NewKeyExtension(oid string, critical bool, pub crypto.PublicKey) (pkix.Extension, error) {
	der, err := EncodePublicKey(pub)
	if err != nil {
		return pkix.Extension{}, err
	}

	return r.NewExtension(oid, critical, der)
}
