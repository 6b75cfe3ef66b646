// Package rc5xor implements the byte-wise xor used to chain blocks together
// in CBC mode.
package rc5xor

import "fmt"

// Blocks takes two byte slices of equal length, b1 and b2, and returns a new
// byte slice containing the result of a byte-wise XOR operation between
// corresponding elements of b1 and b2.
// Blocks does not modify the input slices.
func Blocks(b1, b2 []byte) ([]byte, error) {
	lb1, lb2 := len(b1), len(b2)
	if lb1 != lb2 {
		errStr := "input blocks are of different lengths: %d and %d"
		return nil, fmt.Errorf(errStr, lb1, lb2)
	}

	xored := make([]byte, lb1)
	for i := range xored {
		xored[i] = b1[i] ^ b2[i]
	}

	return xored, nil
}
