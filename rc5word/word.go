// Package rc5word implements the width-parameterized modular arithmetic and
// data-dependent rotation primitives RC5's key schedule and block transform
// are built from.
//
// Every operation here is exact at the caller's chosen width: Go's unsigned
// integer types already wrap modulo 2^16, 2^32 and 2^64, so Add, Sub and Xor
// need no extra masking. Rotl and Rotr route through math/bits, which masks
// the shift amount to the operand's bit width before rotating — exactly the
// "only the low log2(w) bits of s are significant" rule RC5 requires,
// without a hand-rolled replacement for what the standard library already
// gets right.
package rc5word

import (
	"encoding/binary"
	"math/bits"
)

// Word is the set of unsigned integer widths RC5 operates on.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// Add returns x + y modulo 2^w. Overflow is expected and correct: RC5's
// security relies on wraparound, not on avoiding it.
func Add[W Word](x, y W) W { return x + y }

// Sub returns x - y modulo 2^w.
func Sub[W Word](x, y W) W { return x - y }

// Xor returns the bitwise exclusive-or of x and y.
func Xor[W Word](x, y W) W { return x ^ y }

// Rotl rotates x left by s mod w bits, where w is x's bit width.
func Rotl[W Word](x, s W) W {
	n := int(s)
	switch v := any(x).(type) {
	case uint16:
		return W(bits.RotateLeft16(v, n))
	case uint32:
		return W(bits.RotateLeft32(v, n))
	case uint64:
		return W(bits.RotateLeft64(v, n))
	default:
		panic("rc5word: unsupported word type")
	}
}

// Rotr rotates x right by s mod w bits. It is implemented as a left
// rotation by -s: math/bits treats a negative shift count as a rotation in
// the opposite direction, and two's-complement negation of an unsigned s
// already reduces correctly mod w, so no separate masking step is needed.
func Rotr[W Word](x, s W) W {
	return Rotl(x, -s)
}

// LoadLE reads a little-endian word of W's width from the front of b. It
// panics if b is shorter than the word's byte width, mirroring the
// standard library's own Uint16/Uint32/Uint64 behavior.
func LoadLE[W Word](b []byte) W {
	var zero W
	switch any(zero).(type) {
	case uint16:
		return W(binary.LittleEndian.Uint16(b))
	case uint32:
		return W(binary.LittleEndian.Uint32(b))
	case uint64:
		return W(binary.LittleEndian.Uint64(b))
	default:
		panic("rc5word: unsupported word type")
	}
}

// StoreLE writes x to the front of buf in little-endian order. buf must be
// at least as long as the word's byte width.
func StoreLE[W Word](buf []byte, x W) {
	switch v := any(x).(type) {
	case uint16:
		binary.LittleEndian.PutUint16(buf, v)
	case uint32:
		binary.LittleEndian.PutUint32(buf, v)
	case uint64:
		binary.LittleEndian.PutUint64(buf, v)
	default:
		panic("rc5word: unsupported word type")
	}
}

// ByteWidth returns the byte width of W (2, 4 or 8).
func ByteWidth[W Word]() int {
	var zero W
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		panic("rc5word: unsupported word type")
	}
}
