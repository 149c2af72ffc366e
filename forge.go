package xorhash

import "bytes"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file constructs second preimages for XorHash. Zero bytes are even and so never change a
// slot; a block-aligned message repeated an odd number of times therefore folds to the same
// state as a single copy, since each matched pair of copies cancels itself out.

const copies = 3

// Pad returns a copy of msg followed by BlockSize-len(msg)%BlockSize zero bytes. An already
// aligned msg still receives a full block of padding.
func Pad(msg []byte) []byte {
	r := BlockSize - len(msg)%BlockSize /* Always in 1..BlockSize. */
	padded := make([]byte, len(msg)+r)
	copy(padded, msg)
	return padded
}

// Repeat returns Pad(msg) concatenated n times; n < 1 is treated as 1. Its digest equals
// Sum(msg) when n is odd and is all zero when n is even.
func Repeat(msg []byte, n int) []byte {
	if n < 1 {
		n = 1
	}
	return bytes.Repeat(Pad(msg), n)
}

// Forge returns a message that differs from msg but has the same digest. Its length is always
// a multiple of BlockSize and at least 3*BlockSize.
func Forge(msg []byte) []byte { return Repeat(msg, copies) }

// Collides reports whether a and b are distinct messages with equal digests.
func Collides(a, b []byte) bool {
	return !bytes.Equal(a, b) && Sum(a) == Sum(b)
}
