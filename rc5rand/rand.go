// Package rc5rand supplies the IV collaborator the CBC driver in rc5cbc
// needs: something that hands back bb fresh bytes per message. IVSource lets
// that something be swapped — the source's linear congruential generator for
// exact interop, or a cryptographically secure generator for anything new.
package rc5rand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"
)

// IVSource produces n bytes of initialization-vector material.
type IVSource interface {
	Generate(n int) ([]byte, error)
}

// LCG is a linear congruential generator: x[i+1] = (a*x[i] + c) mod m. It
// reproduces the source's IV generator bit for bit, including its
// cryptographic weakness — an LCG's low-order bits are short-period and its
// state is recoverable from a handful of outputs, so this exists purely for
// interop with ciphertexts the source produced, never as the default.
//
// Every call to Generate advances shared state under a mutex, so LCG is safe
// for concurrent use: concurrent calls are serialized.
type LCG struct {
	mu                                     sync.Mutex
	multiplier, increment, modulus, state uint64
}

// NewLCG constructs an LCG with the source's fixed parameters
// (multiplier 1103515245, increment 12345, modulus 2147483647) and the given
// seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{
		multiplier: 1103515245,
		increment:  12345,
		modulus:    2147483647,
		state:      seed % 2147483647,
	}
}

// NewLCGFromClock seeds an LCG from the current time, the same way the
// source seeds its generator from SystemTime::now() before every CBC
// encryption.
func NewLCGFromClock() *LCG {
	return NewLCG(uint64(time.Now().UnixNano()))
}

func (l *LCG) next() uint64 {
	l.state = (l.multiplier*l.state + l.increment) % l.modulus
	return l.state
}

// Generate returns n bytes of IV material: successive 32-bit LCG outputs,
// little-endian-encoded, concatenated until n bytes are collected. n must be
// a multiple of 4 (every supported block size bb is).
func (l *LCG) Generate(n int) ([]byte, error) {
	if n < 0 || n%4 != 0 {
		return nil, fmt.Errorf("rc5rand: length must be a non-negative multiple of 4, got %d", n)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]byte, n)
	for i := 0; i < n; i += 4 {
		binary.LittleEndian.PutUint32(out[i:i+4], uint32(l.next()))
	}
	return out, nil
}

// CSPRNG draws IV bytes from crypto/rand. It is the default IVSource: the
// source's LCG is deterministic and its state is recoverable from a handful
// of outputs, which defeats the purpose of a fresh IV per message.
type CSPRNG struct{}

// Generate returns n cryptographically random bytes.
func (CSPRNG) Generate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("rc5rand: negative length %d", n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("rc5rand: reading random bytes: %w", err)
	}
	return buf, nil
}
