package xorhash

// N.B.: This function is broken on purpose. Do not use it to check the integrity of anything.
// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The following collection of functions is the reference Go implementation of the XorHash
// checksum: a per-position parity accumulator whose weakness is demonstrated by forge.go.

const (
	BlockSize = 32
	Size      = BlockSize
	/* Every slot of the state holds the XOR of the low bits of all bytes whose absolute position
	is congruent to that slot modulo BlockSize. XOR-ing N bits yields 1 iff an odd number of them
	are set, so rather than summing (and overflowing) each slot, the state tracks only parity: two
	values of equal parity always combine to an even sum. Nothing else about the input (its
	length, order within a slot, or the upper seven bits of each byte) survives compression.

	Because XOR is its own inverse, feeding any block-aligned run of bytes twice in a row leaves
	the state exactly as it was before. That is the property forge.go exploits. */
)

// Digest is the output of XorHash: one byte per parity slot, each either 0 or 1.
type Digest [Size]byte

// String renders d as a string of BlockSize '0' and '1' characters, slot 0 first.
func (d Digest) String() string {
	var str [Size]byte
	for i, v := range d {
		str[i] = '0' + v
	}
	return string(str[:])
}

// Sum returns the XorHash digest of msg.
func Sum(msg []byte) Digest {
	h := New()
	h.Write(msg)
	return h.Finalize()
}

func (h *Hasher) absorb(buf []byte) {
	state, slot := &h.state, int(h.read%BlockSize)
	for _, v := range buf {
		if state[slot]%2 == v%2 {
			state[slot] = 0
		} else {
			state[slot] = 1
		}
		if slot++; slot == BlockSize {
			slot = 0
		}
	}
	h.read += uint64(len(buf))
	h.blocks = (h.read + BlockSize) / BlockSize /* Informational; never mixed into the state. */
}
