package tbbx

import (
	"bytes"
	"crypto/rsa"
	"encoding/asn1"
	"errors"
	"math"
	"math/big"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

func TestEncodeHashRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 20, 32, 64, 4097} {
		digest := make([]byte, n)
		for i := range digest {
			digest[i] = byte(i)
		}

		der, err := EncodeHash(digest)
		if err != nil {
			t.Fatal(err)
		}

		var decoded []byte
		rest, err := asn1.Unmarshal(der, &decoded)
		if err != nil {
			t.Fatal(err)
		}

		assert.Empty(t, rest)
		assert.True(t, bytes.Equal(digest, decoded), "len %d", n)
	}
}

func TestEncodeCounterRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		der, err := EncodeCounter(v)
		if err != nil {
			t.Fatal(err)
		}

		var decoded int64
		rest, err := asn1.Unmarshal(der, &decoded)
		if err != nil {
			t.Fatal(err)
		}

		assert.Empty(t, rest)
		assert.Equal(t, v, decoded)
	}
}

func TestEncodeCounterMinimal(t *testing.T) {
	cases := map[int64][]byte{
		0:   {0x02, 0x01, 0x00},
		1:   {0x02, 0x01, 0x01},
		-1:  {0x02, 0x01, 0xff},
		127: {0x02, 0x01, 0x7f},
		128: {0x02, 0x02, 0x00, 0x80},
	}

	for v, want := range cases {
		der, err := EncodeCounter(v)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, want, der, "value %d", v)
	}
}

func TestEncodePublicKeyLarge(t *testing.T) {
	//No keygen needed since only the public half is encoded
	n := new(big.Int).Lsh(big.NewInt(1), 40000)
	n.Or(n, big.NewInt(1))

	pub := &rsa.PublicKey{N: n, E: 65537}

	der, err := EncodePublicKey(pub)
	if err != nil {
		t.Fatal(err)
	}

	assert.Greater(t, len(der), 4096)
}

func TestEncodePublicKeyNil(t *testing.T) {
	_, err := EncodePublicKey(nil)
	assert.True(t, errors.Is(err, ErrEncoding))
}

func TestEncodePublicKeyUnsupported(t *testing.T) {
	_, err := EncodePublicKey(struct{}{})
	assert.True(t, errors.Is(err, ErrEncoding))
}

func TestEncodeFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 4200)

	for i := 0; i < 100; i++ {
		var digest []byte
		f.Fuzz(&digest)

		der, err := EncodeHash(digest)
		if err != nil {
			t.Fatal(err)
		}

		var decoded []byte
		if _, err := asn1.Unmarshal(der, &decoded); err != nil {
			t.Fatal(err)
		}
		assert.True(t, bytes.Equal(digest, decoded))

		var counter int64
		f.Fuzz(&counter)

		cder, err := EncodeCounter(counter)
		if err != nil {
			t.Fatal(err)
		}

		var cdecoded int64
		if _, err := asn1.Unmarshal(cder, &cdecoded); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, counter, cdecoded)
	}
}
