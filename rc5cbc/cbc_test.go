package rc5cbc

import (
	"bytes"
	"testing"

	"github.com/leshnevskyi/rc5/rc5block"
	"github.com/leshnevskyi/rc5/rc5key"
	"github.com/leshnevskyi/rc5/rc5rand"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := []byte("HelloWorldKey!!!")
	const rounds = 12

	cases := []struct {
		name      string
		plainText []byte
	}{
		{"single byte", []byte("l")},
		{"block aligned", bytes.Repeat([]byte("x"), 8)},
		{"multi block", []byte("the quick brown fox jumps over the lazy dog")},
		{"empty", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := rc5key.Expand[uint32](key, rounds, rc5key.PackingSourceCompat)
			if err != nil {
				t.Fatalf("expanding key: %s", err)
			}

			iv := rc5rand.NewLCG(1)
			cipherText, err := Encrypt(c.plainText, s, rounds, rc5block.ModeLegacy, iv)
			if err != nil {
				t.Fatalf("encrypting: %s", err)
			}

			plain, err := DecryptAndStrip[uint32](cipherText, s, rounds, rc5block.ModeLegacy)
			if err != nil {
				t.Fatalf("decrypting: %s", err)
			}

			if !bytes.Equal(plain, c.plainText) {
				t.Errorf("want %q, got %q", c.plainText, plain)
			}
		})
	}
}

func TestEncryptAlwaysAddsPadding(t *testing.T) {
	key := []byte("HelloWorldKey!!!")
	const rounds = 12

	s, err := rc5key.Expand[uint32](key, rounds, rc5key.PackingSourceCompat)
	if err != nil {
		t.Fatalf("expanding key: %s", err)
	}

	bb := rc5block.BlockSize[uint32]()
	plainText := bytes.Repeat([]byte{0x42}, bb)

	iv := rc5rand.NewLCG(1)
	cipherText, err := Encrypt(plainText, s, rounds, rc5block.ModeLegacy, iv)
	if err != nil {
		t.Fatalf("encrypting: %s", err)
	}

	// One IV block plus one plaintext block plus a full extra padding block.
	want := bb * 3
	if len(cipherText) != want {
		t.Errorf("want ciphertext length %d, got %d", want, len(cipherText))
	}
}

func TestDecryptRejectsMisalignedLength(t *testing.T) {
	key := []byte("HelloWorldKey!!!")
	const rounds = 12

	s, err := rc5key.Expand[uint32](key, rounds, rc5key.PackingSourceCompat)
	if err != nil {
		t.Fatalf("expanding key: %s", err)
	}

	if _, err := Decrypt[uint32]([]byte{1, 2, 3}, s, rounds, rc5block.ModeLegacy); err == nil {
		t.Error("expected error for ciphertext not a multiple of the block size")
	}
}

func TestEncryptProducesFreshIVEachCall(t *testing.T) {
	key := []byte("HelloWorldKey!!!")
	const rounds = 12

	s, err := rc5key.Expand[uint32](key, rounds, rc5key.PackingSourceCompat)
	if err != nil {
		t.Fatalf("expanding key: %s", err)
	}

	plainText := []byte("same message twice")

	var csprng rc5rand.CSPRNG
	c1, err := Encrypt(plainText, s, rounds, rc5block.ModeLegacy, csprng)
	if err != nil {
		t.Fatalf("encrypting: %s", err)
	}
	c2, err := Encrypt(plainText, s, rounds, rc5block.ModeLegacy, csprng)
	if err != nil {
		t.Fatalf("encrypting: %s", err)
	}

	if bytes.Equal(c1, c2) {
		t.Error("expected distinct ciphertexts for repeated encryption of the same plaintext")
	}
}
