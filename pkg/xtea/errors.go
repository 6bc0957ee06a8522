package xtea

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key table does not hold exactly KeySize entries.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidRounds is returned for a negative round count.
	ErrInvalidRounds = errors.New("invalid round count")
)
