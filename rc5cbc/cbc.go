// Package rc5cbc implements RC5's CBC-with-padding mode on top of the ECB
// primitive in rc5block: fresh IV, PKCS#7 padding, block chaining. It does
// not authenticate ciphertext — tampering is silently accepted, matching the
// source it reproduces.
package rc5cbc

import (
	"fmt"

	"github.com/leshnevskyi/rc5/rc5block"
	"github.com/leshnevskyi/rc5/rc5bytes"
	"github.com/leshnevskyi/rc5/rc5pad"
	"github.com/leshnevskyi/rc5/rc5rand"
	"github.com/leshnevskyi/rc5/rc5word"
	"github.com/leshnevskyi/rc5/rc5xor"
)

// Encrypt pads plaintext, prepends a fresh IV drawn from iv, and encrypts
// the framed message block by block under CBC chaining. The IV is itself
// encrypted as the first block rather than emitted in cleartext: the
// chaining register starts at zero, so the first emitted block is
// encrypt_block(IV XOR 0, S).
func Encrypt[W rc5word.Word](plainText []byte, s []W, rounds int, mode rc5block.Mode, iv rc5rand.IVSource) ([]byte, error) {
	bb := rc5block.BlockSize[W]()

	ivBytes, err := iv.Generate(bb)
	if err != nil {
		return nil, fmt.Errorf("rc5cbc: generating iv: %w", err)
	}

	n := bb - ((len(ivBytes) + len(plainText)) % bb)
	message := make([]byte, 0, bb+len(plainText)+n)
	message = append(message, ivBytes...)
	message = append(message, plainText...)
	for i := 0; i < n; i++ {
		message = append(message, byte(n))
	}

	blocks, err := rc5bytes.ToChunks(message, bb)
	if err != nil {
		return nil, fmt.Errorf("rc5cbc: %w", err)
	}

	cipherText := make([]byte, 0, len(message))
	p := make([]byte, bb)

	for k, blk := range blocks {
		x, err := rc5xor.Blocks(blk, p)
		if err != nil {
			return nil, fmt.Errorf("rc5cbc: xoring block %d with chaining register: %w", k, err)
		}

		c, err := rc5block.Encrypt(x, s, rounds, mode)
		if err != nil {
			return nil, fmt.Errorf("rc5cbc: encrypting block %d: %w", k, err)
		}

		cipherText = append(cipherText, c...)
		p = c
	}

	return cipherText, nil
}

// Decrypt undoes Encrypt: it decrypts block by block under CBC chaining and
// discards the leading bb bytes (the decrypted IV). The trailing padding is
// left intact; call DecryptAndStrip to also validate and remove it.
func Decrypt[W rc5word.Word](cipherText []byte, s []W, rounds int, mode rc5block.Mode) ([]byte, error) {
	bb := rc5block.BlockSize[W]()
	if len(cipherText) == 0 || len(cipherText)%bb != 0 {
		return nil, fmt.Errorf("rc5cbc: ciphertext length %d is not a positive multiple of the block size %d", len(cipherText), bb)
	}

	blocks, err := rc5bytes.ToChunks(cipherText, bb)
	if err != nil {
		return nil, fmt.Errorf("rc5cbc: %w", err)
	}

	plainText := make([]byte, 0, len(cipherText))
	p := make([]byte, bb)

	for k, c := range blocks {
		x, err := rc5block.Decrypt(c, s, rounds, mode)
		if err != nil {
			return nil, fmt.Errorf("rc5cbc: decrypting block %d: %w", k, err)
		}

		blk, err := rc5xor.Blocks(x, p)
		if err != nil {
			return nil, fmt.Errorf("rc5cbc: xoring block %d with chaining register: %w", k, err)
		}

		plainText = append(plainText, blk...)
		p = c
	}

	return plainText[bb:], nil
}

// DecryptAndStrip decrypts cipherText and removes its PKCS#7 padding.
func DecryptAndStrip[W rc5word.Word](cipherText []byte, s []W, rounds int, mode rc5block.Mode) ([]byte, error) {
	plain, err := Decrypt(cipherText, s, rounds, mode)
	if err != nil {
		return nil, err
	}
	return rc5pad.Strip(plain, rc5block.BlockSize[W]())
}
