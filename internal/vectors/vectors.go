// Package vectors provides the sample key and message table, hex parsing
// helpers, and loading of vector tables from YAML or JSONC files.
package vectors

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/athapa23/ece545-f22-prj/pkg/xtea"
)

// ErrInvalidVector is returned for a vector that is missing or mixes its inputs.
var ErrInvalidVector = errors.New("invalid vector")

// Vector is one input block, optionally with the expected 32-bit ciphertext.
type Vector struct {
	Name   string
	Block  xtea.Block
	Expect uint32
	// HasExpect is set when Expect was provided.
	HasExpect bool
}

// SampleKey is the key table of the reference demo.
//
//nolint:gochecknoglobals
var SampleKey = []uint16{0xABCD, 0xCCCC, 0x6666, 0xFEDC}

// Samples returns the reference demo table.
func Samples() []Vector {
	pairs := [][2]uint16{
		{0xFFFF, 0x0000},
		{0x0000, 0xFFFF},
		{0xAAAA, 0x0000},
		{0x5555, 0x0000},
		{0xFFFF, 0xAAAA},
		{0xFFFF, 0x5555},
		{0x0101, 0x1010},
		{0xABCD, 0xEF01},
		{0xABCD, 0xDA1A},
		{0xDA1A, 0x0001},
	}

	out := make([]Vector, len(pairs))
	for i, p := range pairs {
		out[i] = Vector{
			Name:  strconv.Itoa(i),
			Block: xtea.Block{High: p[0], Low: p[1]},
		}
	}

	return out
}

// ParseWord parses a 16-bit hex value with an optional 0x prefix.
func ParseWord(s string) (uint16, error) {
	v, err := parseHex(s, 16)
	if err != nil {
		return 0, err
	}

	return uint16(v), nil //nolint:gosec // bounded by parseHex
}

// ParseMessage parses a 32-bit hex value with an optional 0x prefix.
func ParseMessage(s string) (uint32, error) {
	v, err := parseHex(s, 32)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil //nolint:gosec // bounded by parseHex
}

func parseHex(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(TrimHexPrefix(s), 16, bits)
	if err != nil {
		return 0, fmt.Errorf("parsing %d-bit hex value %q: %w", bits, s, err)
	}

	return v, nil
}

// TrimHexPrefix removes surrounding whitespace and an optional 0x or 0X prefix.
func TrimHexPrefix(s string) string {
	s = strings.TrimSpace(s)

	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
}

// ParseKey decodes 16 hex digits, with an optional 0x prefix, into a key table,
// most significant word first.
func ParseKey(s string) ([]uint16, error) {
	raw, err := key.FromHex(TrimHexPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	if len(raw) != xtea.KeySize*2 {
		return nil, fmt.Errorf("%w: key must be %d hex digits, got %d", xtea.ErrInvalidKeyLength, xtea.KeySize*4, len(raw)*2)
	}

	words := make([]uint16, xtea.KeySize)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(raw[2*i:])
	}

	return words, nil
}

// FormatKey is the inverse of ParseKey.
func FormatKey(key []uint16) string {
	var sb strings.Builder

	for _, w := range key {
		fmt.Fprintf(&sb, "%04x", w)
	}

	return sb.String()
}
