package trial

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/xorhash"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file is the verification harness for XorHash's forger: it draws reproducible messages from
// a ChaCha keystream and checks each forgery against XorHash and against properly-vetted hashing
// algorithms, which must tell the two messages apart.

const rounds = 8

var nonce [chacha.XNonceSize]byte

// Source is a deterministic stream of pseudo-random messages.
type Source struct {
	stream *chacha.Cipher
	word   [8]byte
}

func NewSource(seed [32]byte) *Source {
	stream, err := chacha.NewCipher(nonce[:], seed[:], rounds)
	if err != nil {
		panic(err) /* Unreachable: nonce, key, and rounds are all valid. */
	}
	return &Source{stream: stream}
}

// Message returns a fresh message of between 0 and max bytes.
func (s *Source) Message(max int) []byte {
	if max < 0 {
		max = 0
	}
	s.fill(s.word[:])
	msg := make([]byte, binary.LittleEndian.Uint64(s.word[:])%uint64(max+1))
	s.fill(msg)
	return msg
}

func (s *Source) fill(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	s.stream.XORKeyStream(buf, buf)
}

// Fingerprints holds digests of one message under collision-resistant functions.
type Fingerprints struct {
	BLAKE3 [32]byte
	SHA256 [32]byte
	XXH3   uint64
}

func Fingerprint(msg []byte) Fingerprints {
	return Fingerprints{blake3.Sum256(msg), sha256.Sum256(msg), xxh3.Hash(msg)}
}

// Separates reports whether every field of f differs from its counterpart in g.
func (f Fingerprints) Separates(g Fingerprints) bool {
	return f.BLAKE3 != g.BLAKE3 && f.SHA256 != g.SHA256 && f.XXH3 != g.XXH3
}

// Result tallies a collision campaign.
type Result struct {
	Trials, Collisions, BadLengths, Separations int
	/* The first message whose forgery failed to collide, if any. */
	Failure []byte
	Failed  bool
}

// OK reports whether every trial produced a well-formed colliding forgery.
func (r Result) OK() bool {
	return !r.Failed && r.Collisions == r.Trials && r.BadLengths == 0
}

// Run forges trials messages of up to max bytes drawn from src.
func Run(src *Source, trials, max int) Result {
	var r Result
	for ; r.Trials < trials; r.Trials++ {
		msg := src.Message(max)
		forged := xorhash.Forge(msg)

		if n := len(forged); n%xorhash.BlockSize != 0 || n < 3*xorhash.BlockSize {
			r.BadLengths++
		}
		if xorhash.Sum(forged) == xorhash.Sum(msg) {
			r.Collisions++
		} else if !r.Failed {
			r.Failure, r.Failed = msg, true
		}
		if Fingerprint(msg).Separates(Fingerprint(forged)) {
			r.Separations++
		}
	}
	return r
}

// Bias returns the mean absolute deviation, as a percentage of one half, of each slot's count of
// ones from half the number of digests. Zero is perfectly balanced; 100 means every slot is
// constant.
func Bias(digests []xorhash.Digest) float64 {
	if len(digests) == 0 {
		return 0
	}
	var tally [xorhash.Size]int
	for _, d := range digests {
		for i, v := range d {
			tally[i] += int(v)
		}
	}
	half := float64(len(digests)) / 2
	var total float64
	for _, v := range tally {
		dev := float64(v) - half
		if dev < 0 {
			dev = -dev
		}
		total += dev
	}
	return total / xorhash.Size / half * 100
}
