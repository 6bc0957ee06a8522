package logic

import "errors"

var (
	// ErrNoArgs is returned when a command needs at least one positional argument.
	ErrNoArgs = errors.New("no arguments given")
	// ErrMismatch is returned by RunCheck when vectors disagree with their expected ciphertext.
	ErrMismatch = errors.New("vector mismatch")
)
