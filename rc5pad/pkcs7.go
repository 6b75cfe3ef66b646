// Package rc5pad implements PKCS#7 padding for the RC5 CBC driver: Pad
// applies the same padding rule rc5cbc.Encrypt applies inline, and Strip
// (with validation) removes it after decryption.
package rc5pad

import "fmt"

// Pad pads data to a multiple of blockSize by appending n copies of the byte
// n, where n = blockSize - (len(data) mod blockSize). n is always in
// [1, blockSize]: a plaintext whose length is already a multiple of
// blockSize still receives a full extra block of padding, so the padding
// can always be located and removed unambiguously.
// Pad does not modify the input slice; it returns a new slice.
func Pad(data []byte, blockSize int) []byte {
	var (
		dLen = len(data)
		n    = blockSize - dLen%blockSize
	)

	padded := make([]byte, dLen+n)
	copy(padded, data)
	for i := dLen; i < len(padded); i++ {
		padded[i] = byte(n)
	}

	return padded
}

// Strip validates and removes PKCS#7 padding from data: the last byte n must
// lie in [1, blockSize], data must be at least n bytes long, and the final n
// bytes must all equal n. It returns an error instead of guessing when the
// padding is malformed — the CBC driver never validates this on the
// caller's behalf (see package rc5cbc's Decrypt), so a wrong key or a
// tampered ciphertext surfaces here as an explicit error rather than
// silently truncated garbage.
func Strip(data []byte, blockSize int) ([]byte, error) {
	dLen := len(data)
	if dLen == 0 {
		return nil, fmt.Errorf("rc5pad: empty input has no padding to strip")
	}

	n := int(data[dLen-1])
	if n < 1 || n > blockSize {
		return nil, fmt.Errorf("rc5pad: invalid padding length %d (block size %d)", n, blockSize)
	}
	if n > dLen {
		return nil, fmt.Errorf("rc5pad: padding length %d exceeds input length %d", n, dLen)
	}

	for i := dLen - n; i < dLen; i++ {
		if data[i] != byte(n) {
			return nil, fmt.Errorf("rc5pad: padding byte at offset %d is %#x, want %#x", i, data[i], n)
		}
	}

	return data[:dLen-n], nil
}
