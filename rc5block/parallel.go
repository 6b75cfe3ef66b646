package rc5block

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/leshnevskyi/rc5/rc5word"
)

// EncryptBlocks encrypts each block in blocks independently under S, using
// one goroutine per block. Unlike CBC, ECB blocks carry no dependency on one
// another, so fanning them out is safe: a slow or failing block doesn't hold
// up the others, and the first error observed is returned after every
// in-flight block has finished.
func EncryptBlocks[W rc5word.Word](blocks [][]byte, s []W, rounds int, mode Mode) ([][]byte, error) {
	return transformBlocks(blocks, s, rounds, mode, Encrypt[W])
}

// DecryptBlocks is the decrypting counterpart of EncryptBlocks.
func DecryptBlocks[W rc5word.Word](blocks [][]byte, s []W, rounds int, mode Mode) ([][]byte, error) {
	return transformBlocks(blocks, s, rounds, mode, Decrypt[W])
}

func transformBlocks[W rc5word.Word](
	blocks [][]byte,
	s []W,
	rounds int,
	mode Mode,
	transform func([]byte, []W, int, Mode) ([]byte, error),
) ([][]byte, error) {
	out := make([][]byte, len(blocks))

	var errG errgroup.Group
	for idx, blk := range blocks {
		i, b := idx, blk
		errG.Go(func() error {
			transformed, err := transform(b, s, rounds, mode)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			out[i] = transformed
			return nil
		})
	}

	if err := errG.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
