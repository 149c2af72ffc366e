package main

import (
	"encoding/binary"
	. "fmt"

	"github.com/p7r0x7/xorhash"
	"github.com/p7r0x7/xorhash/trial"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints, maxLen = int(5e4), 4 << 10

var seed = [32]byte{'s', 't', 'a', 't', 'z'}

func forgeTest() bool {
	r := trial.Run(trial.NewSource(seed), ints, maxLen)
	Printf("Forged collisions:           %d/%d\n", r.Collisions, r.Trials)
	Printf("Malformed forgeries:         %d\n", r.BadLengths)
	Printf("Separated by strong hashes:  %d/%d\n", r.Separations, r.Trials)
	if r.Failed {
		Printf("First failure:               %x\n", r.Failure)
	}
	return r.OK()
}

func biasTest() {
	iBytes := make([]byte, 4)
	integers, random := make([]xorhash.Digest, 0, ints), make([]xorhash.Digest, 0, ints)
	src := trial.NewSource(seed)
	for i := uint32(ints); i > 0; i-- {
		binary.BigEndian.PutUint32(iBytes, i)
		integers = append(integers, xorhash.Sum(iBytes))
		random = append(random, xorhash.Sum(src.Message(maxLen)))
	}
	Printf("Integer input Monobit test:  %5.3f%%\n", trial.Bias(integers))
	Printf("Random input Monobit test:   %5.3f%%\n", trial.Bias(random))
}
