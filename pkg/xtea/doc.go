// Package xtea implements a reduced XTEA variant over a 32-bit block.
//
// The block is split into two 16-bit halves and mixed for a small number of
// Feistel round-pairs (three by default) with a 4-entry 16-bit key table:
//
//	w0 = ((low << 4) ^ (low >> 5)) + low
//	high += w0 ^ (sum + key[sum & 3])
//	sum += Delta
//	w1 = ((high << 4) ^ (high >> 5)) + high
//	low += w1 ^ (sum + key[(sum >> 11) & 3])
//
// All arithmetic wraps at 16 bits. Intermediate values are exposed through an
// Observer rather than printed, so the transform itself stays pure.
//
// This is a teaching variant and offers no meaningful security.
package xtea
