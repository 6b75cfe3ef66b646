// Package rc5bytes implements small byte-slice helpers shared by the CBC
// driver and example code: splitting a buffer into fixed-size chunks, and
// printing a buffer block-by-block for inspection.
package rc5bytes

import (
	"errors"
	"fmt"
	"io"
)

// ToChunks splits data into chunks of chunkSize bytes. It expects len(data)
// to be a multiple of chunkSize — true of any RC5 ciphertext or padded
// plaintext. It does not modify the input slice; each returned chunk aliases
// the corresponding region of data.
func ToChunks(data []byte, chunkSize int) ([][]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("data is empty")
	}
	if chunkSize <= 0 {
		return nil, errors.New("chunk size must be greater than 0")
	}
	if len(data)%chunkSize != 0 {
		return nil, errors.New("data length is not a multiple of chunk size")
	}

	var (
		nChunks = len(data) / chunkSize
		chunks  = make([][]byte, 0, nChunks)
	)
	for i := 0; i < len(data); i += chunkSize {
		chunkEnd := i + chunkSize
		chunks = append(chunks, data[i:chunkEnd])
	}

	return chunks, nil
}

// PrintBlocks prints data to out as successive blocks of blkSize bytes, one
// per line, alongside their raw-byte rendering. It assumes len(data) is a
// multiple of blkSize.
// For example, given ['a','a','a','a','a','a','a','a'] with blkSize=4:
//
//	[97 97 97 97]  aaaa
//	[97 97 97 97]  aaaa
func PrintBlocks(data []byte, blkSize uint, out io.Writer) {
	nBlks := (uint(len(data)) + blkSize - 1) / blkSize

	for i := range nBlks {
		var (
			blkStart = i * blkSize
			blkEnd   = blkStart + blkSize
			blk      = data[blkStart:blkEnd]
		)
		out.Write(fmt.Appendf(nil, "%-*v\t%s\n", 3, blk, blk))
	}
}
