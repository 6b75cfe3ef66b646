// Command basic_usage demonstrates encrypting and decrypting a short
// message with the rc5 package. It is a usage sample, not the file-based
// CLI the source ships (that wrapper is out of scope here).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/leshnevskyi/rc5"
	"github.com/leshnevskyi/rc5/rc5bytes"
)

func main() {
	cipher, err := rc5.New(rc5.Config{
		Width:  rc5.Width32,
		Rounds: 16,
		KeyLen: 16,
	})
	if err != nil {
		log.Fatalf("constructing cipher: %s", err)
	}

	key, err := cipher.DeriveKey([]byte("correct horse battery staple"))
	if err != nil {
		log.Fatalf("deriving key: %s", err)
	}

	plainText := []byte("the quick brown fox jumps over the lazy dog")

	cipherText, err := cipher.EncryptCBCPad(plainText, key)
	if err != nil {
		log.Fatalf("encrypting: %s", err)
	}
	fmt.Printf("ciphertext (%d bytes), block by block:\n", len(cipherText))
	rc5bytes.PrintBlocks(cipherText, uint(cipher.BlockSize()), os.Stdout)

	recovered, err := cipher.DecryptCBCPadAndStrip(cipherText, key)
	if err != nil {
		log.Fatalf("decrypting: %s", err)
	}
	fmt.Printf("recovered: %s\n", recovered)
}
