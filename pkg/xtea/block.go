package xtea

import "fmt"

const (
	// Delta is the constant added to the sum accumulator once per round.
	Delta uint16 = 0x800A
	// Rounds is the default number of round-pairs.
	Rounds = 3
	// KeySize is the number of 16-bit entries in a key table.
	KeySize = 4
	// BlockSize is the block size in bytes.
	BlockSize = 4
)

// Block is a 32-bit block held as two independently wrapping 16-bit halves.
type Block struct {
	High uint16
	Low  uint16
}

// Split partitions a 32-bit message into its high and low halves.
func Split(msg uint32) Block {
	return Block{
		High: uint16(msg >> 16),    //nolint:gosec // truncation intended
		Low:  uint16(msg & 0xFFFF), //nolint:gosec // truncation intended
	}
}

// Uint32 reassembles the block as (High << 16) | Low.
func (b Block) Uint32() uint32 {
	return uint32(b.High)<<16 | uint32(b.Low)
}

// String formats the block as its two halves in hex.
func (b Block) String() string {
	return fmt.Sprintf("%04x:%04x", b.High, b.Low)
}

// Key is a 4-entry table of 16-bit key words.
type Key [KeySize]uint16

// NewKey copies words into a Key, failing unless exactly KeySize words are given.
func NewKey(words []uint16) (Key, error) {
	var key Key

	if len(words) != KeySize {
		return key, fmt.Errorf("%w: got %d words, want %d", ErrInvalidKeyLength, len(words), KeySize)
	}

	copy(key[:], words)

	return key, nil
}

// String formats the key as four hex words.
func (k Key) String() string {
	return fmt.Sprintf("{%04x, %04x, %04x, %04x}", k[0], k[1], k[2], k[3])
}

// mix is the shift-xor-add function applied to one half.
func mix(x uint16) uint16 {
	return ((x << 4) ^ (x >> 5)) + x
}
