package xorhash

import "hash"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash interface.

// Hasher is a single-use XorHash accumulator. Bytes written to it are folded into the state by
// their absolute position across all calls to Write; Finalize consumes it.
type Hasher struct {
	read, blocks uint64
	final        bool
	state        [BlockSize]byte
}

var _ hash.Hash = (*Hasher)(nil)

func New() *Hasher { return &Hasher{} }

func (h *Hasher) Size() int { return Size }

func (h *Hasher) BlockSize() int { return BlockSize }

// Blocks returns the number of blocks the input so far spans, counting a trailing partial (or
// empty) block as one. It has no effect on the digest.
func (h *Hasher) Blocks() uint64 { return h.blocks }

// Write never returns an error. It panics if h has already been finalized.
func (h *Hasher) Write(buf []byte) (int, error) {
	if h.final {
		panic("xorhash: Write called after Finalize")
	}
	h.absorb(buf)
	return len(buf), nil
}

// Finalize returns the digest of everything written to h. h must not be used afterwards except
// to call Reset.
func (h *Hasher) Finalize() Digest {
	if h.final {
		panic("xorhash: Finalize called twice")
	}
	h.final = true
	return Digest(h.state)
}

// Sum appends the current state to buf without consuming h.
func (h *Hasher) Sum(buf []byte) []byte {
	return append(buf, h.state[:]...)
}

func (h *Hasher) Reset() {
	*h = Hasher{}
}
