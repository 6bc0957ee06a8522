package xtea

import (
	"encoding/binary"
	"fmt"
)

// Cipher is a keyed instance of the transform. It holds no mutable state
// and is safe for concurrent use.
type Cipher struct {
	key    Key
	rounds int
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithRounds sets the number of round-pairs. Zero rounds leaves blocks unchanged.
func WithRounds(n int) Option {
	return func(c *Cipher) {
		c.rounds = n
	}
}

// NewCipher creates a Cipher from a 4-word key table.
func NewCipher(key []uint16, opts ...Option) (*Cipher, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}

	c := &Cipher{key: k, rounds: Rounds}

	for _, opt := range opts {
		opt(c)
	}

	if c.rounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, c.rounds)
	}

	return c, nil
}

// Key returns the key table.
func (c *Cipher) Key() Key { return c.key }

// Rounds returns the configured number of round-pairs.
func (c *Cipher) Rounds() int { return c.rounds }

// Encipher applies the configured rounds to block.
func (c *Cipher) Encipher(block Block) Block {
	return c.EncipherTrace(block, nil)
}

// EncipherTrace is Encipher with an optional observer.
func (c *Cipher) EncipherTrace(block Block, obs Observer) Block {
	high, low := block.High, block.Low

	var sum uint16

	for i := range c.rounds {
		w0 := mix(low)
		k0 := sum + c.key[sum&3]
		t0 := w0 ^ k0
		high += t0

		sum += Delta

		w1 := mix(high)
		k1 := sum + c.key[(sum>>11)&3]
		t1 := w1 ^ k1
		low += t1

		if obs != nil {
			obs.ObserveRound(RoundTrace{
				Index: i,
				W0:    w0, K0: k0, T0: t0,
				High: high, Sum: sum,
				W1: w1, K1: k1, T1: t1,
				Low: low,
			})
		}
	}

	out := Block{High: high, Low: low}

	if obs != nil {
		obs.ObserveDone(out)
	}

	return out
}

// Decipher inverts Encipher for the same key and round count.
func (c *Cipher) Decipher(block Block) Block {
	high, low := block.High, block.Low

	sum := Delta * uint16(c.rounds) //nolint:gosec // wraps like the running sum

	for range c.rounds {
		low -= mix(high) ^ (sum + c.key[(sum>>11)&3])
		sum -= Delta
		high -= mix(low) ^ (sum + c.key[sum&3])
	}

	return Block{High: high, Low: low}
}

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt enciphers the first 4 bytes of src into dst, big-endian.
// dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	checkBlock(dst, src)

	out := c.Encipher(Split(binary.BigEndian.Uint32(src)))
	binary.BigEndian.PutUint32(dst, out.Uint32())
}

// Decrypt deciphers the first 4 bytes of src into dst, big-endian.
func (c *Cipher) Decrypt(dst, src []byte) {
	checkBlock(dst, src)

	out := c.Decipher(Split(binary.BigEndian.Uint32(src)))
	binary.BigEndian.PutUint32(dst, out.Uint32())
}

func checkBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("xtea: input not full block")
	}

	if len(dst) < BlockSize {
		panic("xtea: output not full block")
	}
}

// Encipher applies the default rounds to block under key.
func Encipher(block Block, key []uint16) (Block, error) {
	c, err := NewCipher(key)
	if err != nil {
		return Block{}, err
	}

	return c.Encipher(block), nil
}

// Encrypt enciphers a 32-bit message under key with the default rounds.
func Encrypt(msg uint32, key []uint16) (uint32, error) {
	out, err := Encipher(Split(msg), key)
	if err != nil {
		return 0, err
	}

	return out.Uint32(), nil
}

// Decrypt inverts Encrypt.
func Decrypt(msg uint32, key []uint16) (uint32, error) {
	c, err := NewCipher(key)
	if err != nil {
		return 0, err
	}

	return c.Decipher(Split(msg)).Uint32(), nil
}
