package tbbx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const trustedBootFwHashOID = "1.3.6.1.4.1.4128.2100.201"

func TestNewExtension(t *testing.T) {
	r, err := NewTBBRegistry()
	if err != nil {
		t.Fatal(err)
	}

	for _, critical := range []bool{true, false} {
		for _, der := range [][]byte{nil, {0x04, 0x02, 0xab, 0xcd}} {
			ext, err := r.NewExtension(trustedBootFwHashOID, critical, der)
			if err != nil {
				t.Fatal(err)
			}

			assert.True(t, ext.Id.Equal(asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 4128, 2100, 201}))
			assert.Equal(t, critical, ext.Critical)
			assert.Equal(t, len(der), len(ext.Value))
			if len(der) != 0 {
				assert.Equal(t, der, ext.Value)
			}
		}
	}
}

func TestNewExtensionUnknownOID(t *testing.T) {
	r, err := NewTBBRegistry()
	if err != nil {
		t.Fatal(err)
	}

	_, err = r.NewExtension("9.9.9.9.9", true, []byte{0x04, 0x00})
	assert.True(t, errors.Is(err, ErrUnknownExtension))
}

func TestNewExtensionCopiesValue(t *testing.T) {
	r, err := NewTBBRegistry()
	if err != nil {
		t.Fatal(err)
	}

	der := []byte{0x04, 0x01, 0xaa}
	ext, err := r.NewExtension(trustedBootFwHashOID, false, der)
	if err != nil {
		t.Fatal(err)
	}

	der[2] = 0xbb
	assert.Equal(t, byte(0xaa), ext.Value[2])
}

func TestCounterExtension(t *testing.T) {
	r, err := NewTBBRegistry()
	if err != nil {
		t.Fatal(err)
	}

	ext, err := r.NewCounterExtension("1.3.6.1.4.1.4128.2100.1", true, 31)
	if err != nil {
		t.Fatal(err)
	}

	var decoded int64
	_, err = asn1.Unmarshal(ext.Value, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, int64(31), decoded)
}

func TestKeyExtension(t *testing.T) {
	r, err := NewTBBRegistry()
	if err != nil {
		t.Fatal(err)
	}

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	ext, err := r.NewKeyExtension("1.3.6.1.4.1.4128.2100.302", false, pub)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := x509.ParsePKIXPublicKey(ext.Value)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, pub, parsed)
}

//TestHashExtensionRoundTrip drives an extension through the standard
//certificate serializer and parser to prove the wire layout survives intact
func TestHashExtensionRoundTrip(t *testing.T) {
	r, err := NewTBBRegistry()
	if err != nil {
		t.Fatal(err)
	}

	digest := make([]byte, 32)

	ext, err := r.NewHashExtension(trustedBootFwHashOID, true, digest)
	if err != nil {
		t.Fatal(err)
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	template := &x509.Certificate{
		SerialNumber:    big.NewInt(1),
		Subject:         pkix.Name{CommonName: "Trusted Boot FW Certificate"},
		NotBefore:       time.Now(),
		NotAfter:        time.Now().Add(24 * time.Hour),
		ExtraExtensions: []pkix.Extension{ext},
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, pub, priv)
	if err != nil {
		t.Fatal(err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatal(err)
	}

	var found *pkix.Extension
	for i, e := range cert.Extensions {
		if e.Id.Equal(ext.Id) {
			found = &cert.Extensions[i]
			break
		}
	}

	if found == nil {
		t.Fatal("extension missing from parsed certificate")
	}

	assert.True(t, found.Critical)

	var decoded []byte
	rest, err := asn1.Unmarshal(found.Value, &decoded)
	assert.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, digest, decoded)
}
