// Package rc5key implements RC5's key scheduling algorithm (KSA): expanding
// a caller-supplied byte key into the round-key table S that the block
// transform in package rc5block consumes.
package rc5key

import (
	"fmt"

	"github.com/leshnevskyi/rc5/rc5word"
)

// PackingMode selects how the KSA folds key bytes into the L array before
// mixing. The original program's packing loop walks the key bytes in
// reverse starting from index b-2, so it never reads the key's last byte
// (see PackingSourceCompat); PackingFull fixes this by folding in all b
// bytes, and both are available rather than silently picking one.
type PackingMode int

const (
	// PackingSourceCompat reproduces the original loop exactly: key bytes
	// b-2 down to 0 are folded into L, and key[b-1] — the last byte — is
	// never read. This is the default, and the only mode that reproduces
	// ciphertexts compatible with the original program.
	PackingSourceCompat PackingMode = iota

	// PackingFull folds in all b key bytes, matching canonical RC5. It is
	// not compatible with PackingSourceCompat-derived ciphertexts.
	PackingFull
)

// magic returns the P and Q constants for W's width, per Table 1 of the RC5
// specification.
func magic[W rc5word.Word]() (p, q W) {
	switch any(W(0)).(type) {
	case uint16:
		return W(0xB7E1), W(0x9E37)
	case uint32:
		p32, q32 := uint32(0xB7E15163), uint32(0x9E3779B9)
		return W(p32), W(q32)
	case uint64:
		p64, q64 := uint64(0xB7E151628AED2A6B), uint64(0x9E3779B97F4A7C15)
		return W(p64), W(q64)
	default:
		panic("rc5key: unsupported word type")
	}
}

// Expand runs the RC5 key scheduling algorithm over key, producing the
// round-key table S of length 2*(rounds+1). It returns an error if rounds is
// out of [1,255] or key's length isn't one of the three supported key sizes
// (8, 16 or 32 bytes).
func Expand[W rc5word.Word](key []byte, rounds int, mode PackingMode) ([]W, error) {
	if rounds < 1 || rounds > 255 {
		return nil, fmt.Errorf("rc5key: rounds must be in [1,255], got %d", rounds)
	}

	b := len(key)
	switch b {
	case 8, 16, 32:
	default:
		return nil, fmt.Errorf("rc5key: key length must be 8, 16 or 32 bytes, got %d", b)
	}

	var (
		u = rc5word.ByteWidth[W]()       // bytes per word
		w = u * 8                        // bits per word
		c = (8*b + w - 1) / w            // number of key words
		t = 2 * (rounds + 1)             // round-key table length
		l = make([]W, c)
		s = make([]W, t)
	)

	// Byte-to-word packing, little-endian, reverse order: fold each key
	// byte into L via rotate-and-add.
	lo := 0
	if mode == PackingSourceCompat {
		// The source loop is `(0..b-1).rev()`, i.e. b-2 down to 0: it never
		// touches key[b-1].
		lo = 1
	}
	for i := b - 1 - lo; i >= 0; i-- {
		idx := i / u
		l[idx] = rc5word.Add(rc5word.Rotl(l[idx], W(8)), W(key[i]))
	}

	p, q := magic[W]()
	s[0] = p
	for i := 1; i < t; i++ {
		s[i] = rc5word.Add(s[i-1], q)
	}

	var i, j int
	var a, b2 W
	for range 3 * t {
		a = rc5word.Rotl(rc5word.Add(rc5word.Add(s[i], a), b2), W(3))
		s[i] = a

		b2 = rc5word.Rotl(rc5word.Add(rc5word.Add(l[j], a), b2), rc5word.Add(a, b2))
		l[j] = b2

		i = (i + 1) % t
		j = (j + 1) % c
	}

	return s, nil
}
