// Package rc5 is the public façade over the toolkit: construction-time
// validation of (word width, rounds, key length), key derivation and
// expansion, single-block ECB transforms, and the CBC-with-padding driver.
// The width-specific arithmetic lives in rc5word/rc5key/rc5block; this
// package just dispatches to the right instantiation and wraps the result
// behind a single, width-erased Cipher handle — the same role the source's
// RC5ExpandedKey enum plays across its three concrete widths.
package rc5

import (
	"fmt"

	"github.com/leshnevskyi/rc5/rc5block"
	"github.com/leshnevskyi/rc5/rc5cbc"
	"github.com/leshnevskyi/rc5/rc5kdf"
	"github.com/leshnevskyi/rc5/rc5key"
	"github.com/leshnevskyi/rc5/rc5rand"
)

// Width is a supported RC5 word width, in bits.
type Width int

const (
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Config configures a Cipher. Width, Rounds and KeyLen are required; the
// remaining fields take the documented defaults when left zero.
type Config struct {
	Width  Width // w ∈ {16, 32, 64}
	Rounds int   // r ∈ [1, 255]
	KeyLen int   // b ∈ {8, 16, 32}

	// BlockMode selects between ModeLegacy (source-exact, default) and
	// ModeCanonical for the block transform. Zero value is ModeLegacy.
	BlockMode rc5block.Mode

	// Packing selects between PackingSourceCompat (default) and
	// PackingFull for the key schedule's byte-packing loop. Zero value is
	// PackingSourceCompat.
	Packing rc5key.PackingMode

	// KeyDeriver derives raw keys from passphrases. Defaults to
	// rc5kdf.MD5Deriver{}, matching the source's key-derivation contract.
	KeyDeriver rc5kdf.KeyDeriver

	// IV supplies initialization vectors for EncryptCBCPad. Defaults to
	// rc5rand.CSPRNG{}; pass an *rc5rand.LCG to interoperate with the
	// source's ciphertexts.
	IV rc5rand.IVSource
}

// Cipher is an immutable (w, r, b) configuration. A Cipher and any
// RoundKeyTable it expands are safe for concurrent use: encrypt/decrypt
// calls share no mutable state besides the IV source, which guards its own
// state internally.
type Cipher struct {
	cfg Config
}

// New validates cfg and returns a Cipher. It is the only place configuration
// errors surface — every other method trusts its receiver's cfg.
func New(cfg Config) (*Cipher, error) {
	switch cfg.Width {
	case Width16, Width32, Width64:
	default:
		return nil, &ConfigError{"Width", cfg.Width, "must be 16, 32 or 64"}
	}
	if cfg.Rounds < 1 || cfg.Rounds > 255 {
		return nil, &ConfigError{"Rounds", cfg.Rounds, "must be in [1, 255]"}
	}
	switch cfg.KeyLen {
	case 8, 16, 32:
	default:
		return nil, &ConfigError{"KeyLen", cfg.KeyLen, "must be 8, 16 or 32"}
	}

	if cfg.KeyDeriver == nil {
		cfg.KeyDeriver = rc5kdf.MD5Deriver{}
	}
	if cfg.IV == nil {
		cfg.IV = rc5rand.CSPRNG{}
	}

	return &Cipher{cfg: cfg}, nil
}

// BlockSize returns bb, the ECB block size in bytes for this Cipher's width.
func (c *Cipher) BlockSize() int {
	switch c.cfg.Width {
	case Width16:
		return rc5block.BlockSize[uint16]()
	case Width32:
		return rc5block.BlockSize[uint32]()
	default:
		return rc5block.BlockSize[uint64]()
	}
}

// DeriveKey maps passphrase to a raw key of length KeyLen via the
// configured KeyDeriver.
func (c *Cipher) DeriveKey(passphrase []byte) ([]byte, error) {
	key, err := c.cfg.KeyDeriver.DeriveKey(passphrase, c.cfg.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("rc5: deriving key: %w", err)
	}
	return key, nil
}

// RoundKeyTable is an expanded round-key table S, tagged with the width it
// was expanded for. Its zero value is not usable; obtain one from
// Cipher.ExpandKey.
type RoundKeyTable struct {
	Width Width
	s     any // []uint16 | []uint32 | []uint64
}

// ExpandKey runs the key schedule over rawKey, which must be exactly
// KeyLen bytes.
func (c *Cipher) ExpandKey(rawKey []byte) (RoundKeyTable, error) {
	if len(rawKey) != c.cfg.KeyLen {
		return RoundKeyTable{}, &LengthError{"ExpandKey", fmt.Sprintf("%d", c.cfg.KeyLen), len(rawKey)}
	}

	switch c.cfg.Width {
	case Width16:
		s, err := rc5key.Expand[uint16](rawKey, c.cfg.Rounds, c.cfg.Packing)
		if err != nil {
			return RoundKeyTable{}, fmt.Errorf("rc5: %w", err)
		}
		return RoundKeyTable{Width: Width16, s: s}, nil
	case Width32:
		s, err := rc5key.Expand[uint32](rawKey, c.cfg.Rounds, c.cfg.Packing)
		if err != nil {
			return RoundKeyTable{}, fmt.Errorf("rc5: %w", err)
		}
		return RoundKeyTable{Width: Width32, s: s}, nil
	default:
		s, err := rc5key.Expand[uint64](rawKey, c.cfg.Rounds, c.cfg.Packing)
		if err != nil {
			return RoundKeyTable{}, fmt.Errorf("rc5: %w", err)
		}
		return RoundKeyTable{Width: Width64, s: s}, nil
	}
}

// EncryptBlock encrypts a single bb-byte block under s.
func (c *Cipher) EncryptBlock(block []byte, s RoundKeyTable) ([]byte, error) {
	switch v := s.s.(type) {
	case []uint16:
		return rc5block.Encrypt(block, v, c.cfg.Rounds, c.cfg.BlockMode)
	case []uint32:
		return rc5block.Encrypt(block, v, c.cfg.Rounds, c.cfg.BlockMode)
	case []uint64:
		return rc5block.Encrypt(block, v, c.cfg.Rounds, c.cfg.BlockMode)
	default:
		return nil, fmt.Errorf("rc5: round-key table is not initialized")
	}
}

// DecryptBlock decrypts a single bb-byte block under s.
func (c *Cipher) DecryptBlock(block []byte, s RoundKeyTable) ([]byte, error) {
	switch v := s.s.(type) {
	case []uint16:
		return rc5block.Decrypt(block, v, c.cfg.Rounds, c.cfg.BlockMode)
	case []uint32:
		return rc5block.Decrypt(block, v, c.cfg.Rounds, c.cfg.BlockMode)
	case []uint64:
		return rc5block.Decrypt(block, v, c.cfg.Rounds, c.cfg.BlockMode)
	default:
		return nil, fmt.Errorf("rc5: round-key table is not initialized")
	}
}

// EncryptCBCPad derives S from rawKey and runs the CBC-with-padding driver
// over plainText. rawKey must be exactly KeyLen bytes.
func (c *Cipher) EncryptCBCPad(plainText, rawKey []byte) ([]byte, error) {
	s, err := c.ExpandKey(rawKey)
	if err != nil {
		return nil, err
	}

	switch v := s.s.(type) {
	case []uint16:
		return rc5cbc.Encrypt(plainText, v, c.cfg.Rounds, c.cfg.BlockMode, c.cfg.IV)
	case []uint32:
		return rc5cbc.Encrypt(plainText, v, c.cfg.Rounds, c.cfg.BlockMode, c.cfg.IV)
	default:
		return rc5cbc.Encrypt(plainText, s.s.([]uint64), c.cfg.Rounds, c.cfg.BlockMode, c.cfg.IV)
	}
}

// DecryptCBCPad derives S from rawKey and inverts EncryptCBCPad. The
// returned plaintext retains its PKCS#7 padding; call DecryptCBCPadAndStrip
// for the stripped form.
func (c *Cipher) DecryptCBCPad(cipherText, rawKey []byte) ([]byte, error) {
	s, err := c.ExpandKey(rawKey)
	if err != nil {
		return nil, err
	}

	switch v := s.s.(type) {
	case []uint16:
		return rc5cbc.Decrypt(cipherText, v, c.cfg.Rounds, c.cfg.BlockMode)
	case []uint32:
		return rc5cbc.Decrypt(cipherText, v, c.cfg.Rounds, c.cfg.BlockMode)
	default:
		return rc5cbc.Decrypt(cipherText, s.s.([]uint64), c.cfg.Rounds, c.cfg.BlockMode)
	}
}

// DecryptCBCPadAndStrip decrypts cipherText and removes its PKCS#7 padding.
func (c *Cipher) DecryptCBCPadAndStrip(cipherText, rawKey []byte) ([]byte, error) {
	s, err := c.ExpandKey(rawKey)
	if err != nil {
		return nil, err
	}

	switch v := s.s.(type) {
	case []uint16:
		return rc5cbc.DecryptAndStrip(cipherText, v, c.cfg.Rounds, c.cfg.BlockMode)
	case []uint32:
		return rc5cbc.DecryptAndStrip(cipherText, v, c.cfg.Rounds, c.cfg.BlockMode)
	default:
		return rc5cbc.DecryptAndStrip(cipherText, s.s.([]uint64), c.cfg.Rounds, c.cfg.BlockMode)
	}
}
